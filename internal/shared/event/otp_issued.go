package event

const OTPIssuedDestination string = "otp_issued"
const OTPIssuedDestinationConsumerNotification string = "otp_issued_notification"

type OTPIssuedMessage struct {
	UserID    uint64 `json:"user_id"`
	Email     string `json:"email"`
	Code      string `json:"code"`
	ExpiresAt int64  `json:"expires_at"`
}
