package notify

import (
	"context"
	"fmt"

	"ridepool/internal/models"
	"ridepool/internal/utils"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioNotifier struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioNotifier(accountSID, authToken, fromNumber string) *TwilioNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioNotifier{
		client:     client,
		fromNumber: fromNumber,
	}
}

func (t *TwilioNotifier) NotifyRideBooked(ctx context.Context, ride *models.Ride) error {
	departure := utils.FormatTimeTo12Hour(ride.DepartureTime)
	body := fmt.Sprintf(
		"Your %s ride from %s to %s at %s was booked. The booker may call you on this number to coordinate.",
		ride.Vehicle, ride.Origin, ride.Destination, departure,
	)
	if ride.PosterName != "" {
		body = fmt.Sprintf(
			"Hi %s, your %s ride from %s to %s at %s was booked. The booker may call you on this number to coordinate.",
			ride.PosterName, ride.Vehicle, ride.Origin, ride.Destination, departure,
		)
	}

	if !utils.IsValidPhone(ride.ContactNumber) {
		return fmt.Errorf("contact number %q is not a sendable phone number", ride.ContactNumber)
	}

	params := &api.CreateMessageParams{}
	params.SetTo(utils.NormalizePhone(ride.ContactNumber))
	params.SetFrom(t.fromNumber)
	params.SetBody(body)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send booking notification: %w", err)
	}

	return nil
}
