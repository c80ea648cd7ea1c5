package service

// Review feed message types
const (
	MsgCertificateUploaded = "certificate_uploaded"
	MsgCertificateReviewed = "certificate_reviewed"
	MsgCertificateDeleted  = "certificate_deleted"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToClass(class string, msgType string, payload interface{})
	BroadcastToUser(userID string, msgType string, payload interface{})
}

type noopBroadcaster struct{}

func (noopBroadcaster) BroadcastToClass(string, string, interface{})  {}
func (noopBroadcaster) BroadcastToUser(string, string, interface{}) {}
