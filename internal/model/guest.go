package model

// Guest is a checked-in guest document. The document ID is the guest's
// email address; the guest-facing app owns all writes to this collection.
type Guest struct {
	Name  string `firestore:"name" json:"name"`
	Hotel string `firestore:"hotel" json:"hotel"`
}

// Assistant is a hotel assistant document keyed by an opaque ID.
// Assistants without an FCM token are excluded from notification fan-out.
type Assistant struct {
	Hotel    string `firestore:"hotel" json:"hotel"`
	FCMToken string `firestore:"fcmToken" json:"fcmToken"`
}

// GuestToken is a registered guest device document. The document ID is the
// FCM token itself; one guest may own several (multi-device).
type GuestToken struct {
	Email string `firestore:"email" json:"email"`
}
