package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"
	"ridepool/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memBookings struct {
	data     map[string][]models.BookedRide
	readErr  error
	writeErr error
	writes   int
	steps    *[]string
}

func (m *memBookings) ReadAll(ctx context.Context, userKey string) ([]models.BookedRide, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.data[userKey], nil
}

func (m *memBookings) WriteAll(ctx context.Context, userKey string, rides []models.BookedRide) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	if m.steps != nil {
		*m.steps = append(*m.steps, "local_write")
	}
	if m.data == nil {
		m.data = make(map[string][]models.BookedRide)
	}
	m.data[userKey] = rides
	return nil
}

type memRides struct {
	rides     map[primitive.ObjectID]*models.Ride
	deleteErr error
	steps     *[]string
}

func (m *memRides) Insert(ctx context.Context, ride *models.Ride) error {
	if m.rides == nil {
		m.rides = make(map[primitive.ObjectID]*models.Ride)
	}
	m.rides[ride.ID] = ride
	return nil
}

func (m *memRides) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	ride, ok := m.rides[id]
	if !ok {
		return nil, interfaces.ErrRideNotFound
	}
	return ride, nil
}

func (m *memRides) List(ctx context.Context, vehicle models.VehicleType) ([]models.Ride, error) {
	var out []models.Ride
	for _, r := range m.rides {
		if r.Vehicle == vehicle {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memRides) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if m.steps != nil {
		*m.steps = append(*m.steps, "remote_delete")
	}
	if _, ok := m.rides[id]; !ok {
		return interfaces.ErrRideNotFound
	}
	delete(m.rides, id)
	return nil
}

type fakeFeed struct {
	posted []string
	booked []string
}

func (f *fakeFeed) PublishRidePosted(ride *models.Ride) {
	f.posted = append(f.posted, ride.ID.Hex())
}

func (f *fakeFeed) PublishRideBooked(vehicle models.VehicleType, rideID string) {
	f.booked = append(f.booked, rideID)
}

type fakeNotifier struct {
	calls int
	to    string
	err   error
}

func (f *fakeNotifier) NotifyRideBooked(ctx context.Context, ride *models.Ride) error {
	f.calls++
	f.to = ride.ContactNumber
	return f.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func testRide() *models.Ride {
	return &models.Ride{
		ID:              primitive.NewObjectID(),
		PosterName:      "Ravi",
		ContactNumber:   "9876543210",
		Origin:          "MG Road",
		Destination:     "Airport",
		DepartureTime:   "17:30",
		Vehicle:         models.VehicleCar,
		SeatingCapacity: 4,
		Gender:          models.GenderMale,
		CreatedAt:       time.Now(),
	}
}

func TestBookWritesLocallyBeforeDeletingPosting(t *testing.T) {
	var steps []string
	ride := testRide()
	bookings := &memBookings{steps: &steps}
	rides := &memRides{rides: map[primitive.ObjectID]*models.Ride{ride.ID: ride}, steps: &steps}
	feed := &fakeFeed{}
	notifier := &fakeNotifier{}

	svc := NewBookingService(bookings, rides, feed, notifier, testLogger(t))
	result := svc.Book(context.Background(), "u1", ride)

	if result.Outcome != OutcomeBooked {
		t.Fatalf("outcome = %s, want %s", result.Outcome, OutcomeBooked)
	}
	if len(steps) != 2 || steps[0] != "local_write" || steps[1] != "remote_delete" {
		t.Fatalf("steps = %v, want [local_write remote_delete]", steps)
	}
	if _, ok := rides.rides[ride.ID]; ok {
		t.Error("posting still in shared store after booking")
	}
	if got := bookings.data["u1"]; len(got) != 1 || got[0].RideID != ride.ID {
		t.Fatalf("booking cache = %v", got)
	}
	if result.ContactNumber != ride.ContactNumber {
		t.Errorf("contact number = %q, want %q", result.ContactNumber, ride.ContactNumber)
	}
	if len(feed.booked) != 1 || feed.booked[0] != ride.ID.Hex() {
		t.Errorf("feed booked events = %v", feed.booked)
	}
	if notifier.calls != 1 || notifier.to != ride.ContactNumber {
		t.Errorf("notifier calls = %d to %q", notifier.calls, notifier.to)
	}
}

func TestBookAgainKeepsSingleEntry(t *testing.T) {
	ride := testRide()
	booked := models.NewBookedRide(ride, time.Now().Add(-time.Hour))
	bookings := &memBookings{data: map[string][]models.BookedRide{
		"u1": {booked},
	}}
	rides := &memRides{rides: map[primitive.ObjectID]*models.Ride{ride.ID: ride}}

	svc := NewBookingService(bookings, rides, &fakeFeed{}, &fakeNotifier{}, testLogger(t))
	result := svc.Book(context.Background(), "u1", ride)

	if result.Outcome != OutcomeBooked {
		t.Fatalf("outcome = %s, want %s", result.Outcome, OutcomeBooked)
	}
	if bookings.writes != 0 {
		t.Errorf("cache rewritten %d times for an already-booked ride", bookings.writes)
	}
	if !result.Ride.BookedAt.Equal(booked.BookedAt) {
		t.Error("existing booking snapshot was not reused")
	}
	if _, ok := rides.rides[ride.ID]; ok {
		t.Error("posting not deleted on repeat booking")
	}
}

func TestBookAbortsWhenCacheReadFails(t *testing.T) {
	ride := testRide()
	bookings := &memBookings{readErr: errors.New("redis down")}
	rides := &memRides{rides: map[primitive.ObjectID]*models.Ride{ride.ID: ride}}

	svc := NewBookingService(bookings, rides, &fakeFeed{}, &fakeNotifier{}, testLogger(t))
	result := svc.Book(context.Background(), "u1", ride)

	if result.Outcome != OutcomeAborted {
		t.Fatalf("outcome = %s, want %s", result.Outcome, OutcomeAborted)
	}
	var persistErr *LocalPersistenceError
	if !errors.As(result.Err, &persistErr) {
		t.Fatalf("err = %v, want LocalPersistenceError", result.Err)
	}
	if _, ok := rides.rides[ride.ID]; !ok {
		t.Error("posting deleted even though booking aborted")
	}
}

func TestBookAbortsWhenCacheWriteFails(t *testing.T) {
	ride := testRide()
	bookings := &memBookings{writeErr: errors.New("redis down")}
	rides := &memRides{rides: map[primitive.ObjectID]*models.Ride{ride.ID: ride}}
	feed := &fakeFeed{}
	notifier := &fakeNotifier{}

	svc := NewBookingService(bookings, rides, feed, notifier, testLogger(t))
	result := svc.Book(context.Background(), "u1", ride)

	if result.Outcome != OutcomeAborted {
		t.Fatalf("outcome = %s, want %s", result.Outcome, OutcomeAborted)
	}
	if _, ok := rides.rides[ride.ID]; !ok {
		t.Error("posting deleted even though booking aborted")
	}
	if len(feed.booked) != 0 || notifier.calls != 0 {
		t.Error("side effects fired on an aborted booking")
	}
}

func TestBookReportsLocallyOnlyWhenDeleteFails(t *testing.T) {
	ride := testRide()
	bookings := &memBookings{}
	rides := &memRides{
		rides:     map[primitive.ObjectID]*models.Ride{ride.ID: ride},
		deleteErr: errors.New("mongo timeout"),
	}
	feed := &fakeFeed{}
	notifier := &fakeNotifier{}

	svc := NewBookingService(bookings, rides, feed, notifier, testLogger(t))
	result := svc.Book(context.Background(), "u1", ride)

	if result.Outcome != OutcomeBookedLocallyOnly {
		t.Fatalf("outcome = %s, want %s", result.Outcome, OutcomeBookedLocallyOnly)
	}
	var deleteErr *RemoteDeleteError
	if !errors.As(result.Err, &deleteErr) {
		t.Fatalf("err = %v, want RemoteDeleteError", result.Err)
	}
	// The local booking stays: no rollback.
	if got := bookings.data["u1"]; len(got) != 1 {
		t.Fatalf("booking cache = %v, want the booking kept", got)
	}
	if result.ContactNumber != ride.ContactNumber {
		t.Error("contact number missing on locally-only outcome")
	}
	if len(feed.booked) != 0 || notifier.calls != 0 {
		t.Error("side effects fired despite failed delete")
	}
}

func TestBookTreatsMissingPostingAsBooked(t *testing.T) {
	ride := testRide()
	bookings := &memBookings{}
	rides := &memRides{} // ride already gone, a concurrent booker won

	svc := NewBookingService(bookings, rides, &fakeFeed{}, &fakeNotifier{}, testLogger(t))
	result := svc.Book(context.Background(), "u1", ride)

	if result.Outcome != OutcomeBooked {
		t.Fatalf("outcome = %s, want %s", result.Outcome, OutcomeBooked)
	}
	if result.Err != nil {
		t.Errorf("err = %v, want nil", result.Err)
	}
}

func TestBookByIDFailsForUnknownRide(t *testing.T) {
	svc := NewBookingService(&memBookings{}, &memRides{}, &fakeFeed{}, &fakeNotifier{}, testLogger(t))

	_, err := svc.BookByID(context.Background(), "u1", primitive.NewObjectID())
	if !errors.Is(err, interfaces.ErrRideNotFound) {
		t.Fatalf("err = %v, want ErrRideNotFound", err)
	}
}

func TestNotifierFailureDoesNotChangeOutcome(t *testing.T) {
	ride := testRide()
	rides := &memRides{rides: map[primitive.ObjectID]*models.Ride{ride.ID: ride}}
	notifier := &fakeNotifier{err: errors.New("twilio 500")}

	svc := NewBookingService(&memBookings{}, rides, &fakeFeed{}, notifier, testLogger(t))
	result := svc.Book(context.Background(), "u1", ride)

	if result.Outcome != OutcomeBooked || result.Err != nil {
		t.Fatalf("outcome = %s err = %v, want clean booked", result.Outcome, result.Err)
	}
}

func TestUnbookRemovesOnlyTargetRide(t *testing.T) {
	keep := models.NewBookedRide(testRide(), time.Now())
	drop := models.NewBookedRide(testRide(), time.Now())
	bookings := &memBookings{data: map[string][]models.BookedRide{
		"u1": {keep, drop},
	}}
	rides := &memRides{}

	svc := NewBookingService(bookings, rides, &fakeFeed{}, &fakeNotifier{}, testLogger(t))
	if err := svc.Unbook(context.Background(), "u1", drop.RideID); err != nil {
		t.Fatalf("unbook: %v", err)
	}

	got := bookings.data["u1"]
	if len(got) != 1 || got[0].RideID != keep.RideID {
		t.Fatalf("cache after unbook = %v", got)
	}
}

func TestUnbookUnknownRideIsNoOp(t *testing.T) {
	keep := models.NewBookedRide(testRide(), time.Now())
	bookings := &memBookings{data: map[string][]models.BookedRide{
		"u1": {keep},
	}}

	svc := NewBookingService(bookings, &memRides{}, &fakeFeed{}, &fakeNotifier{}, testLogger(t))
	if err := svc.Unbook(context.Background(), "u1", primitive.NewObjectID()); err != nil {
		t.Fatalf("unbook: %v", err)
	}
	if bookings.writes != 0 {
		t.Errorf("cache rewritten %d times for an absent ride", bookings.writes)
	}
}

func TestBookedRidesSortedNewestPostingFirst(t *testing.T) {
	older := testRide()
	older.CreatedAt = time.Now().Add(-2 * time.Hour)
	newer := testRide()
	newer.CreatedAt = time.Now()

	bookings := &memBookings{data: map[string][]models.BookedRide{
		"u1": {
			models.NewBookedRide(older, time.Now()),
			models.NewBookedRide(newer, time.Now()),
		},
	}}

	svc := NewBookingService(bookings, &memRides{}, &fakeFeed{}, &fakeNotifier{}, testLogger(t))
	got, err := svc.BookedRides(context.Background(), "u1")
	if err != nil {
		t.Fatalf("booked rides: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].RideID != newer.ID {
		t.Error("newest posting not first")
	}
}
