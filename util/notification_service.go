// util/notification_service.go

package util

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/tracegraph/registry/logging"
	"github.com/tracegraph/registry/model"
)

// NotificationService handles outbound business notifications. Actual
// delivery (mail provider, message queue) sits behind this type; the domain
// layer only hands it facts.
type NotificationService struct {
	qrService *QRService
}

func NewNotificationService(qrService *QRService) *NotificationService {
	return &NotificationService{qrService: qrService}
}

// SendOnboardingKit notifies a freshly provisioned simple organization: the
// kit contains the QR code for its default scannable so the business can
// start collecting check-ins without further calls.
func (n *NotificationService) SendOnboardingKit(ctx context.Context, event model.SimpleOrganizationCreated) error {
	png, err := n.qrService.GeneratePNG(event.DefaultScannableID)
	if err != nil {
		logger.Error("Failed to render onboarding QR code",
			zap.Error(err),
			zap.String("orgID", event.Organization.ID),
			zap.String("scannableID", event.DefaultScannableID))
		return err
	}

	return n.SendEmail(ctx,
		event.Organization.ContactInfo.Email,
		"Welcome to the tracing network",
		png)
}

// SendEmail delivers a message with an optional attachment. Wire format and
// transport are the mail provider's concern.
func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject string, attachment []byte) error {
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject),
		zap.Int("attachmentBytes", len(attachment)))
	return nil
}
