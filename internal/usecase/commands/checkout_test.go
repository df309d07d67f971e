//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"clinic-agenda/internal/domain/booking"
	"clinic-agenda/internal/domain/payment"
	"clinic-agenda/internal/domain/schedule"
	"clinic-agenda/internal/infra"
	"clinic-agenda/internal/pkg/clock"
	"clinic-agenda/internal/pkg/config"
	"clinic-agenda/internal/pkg/errs"
	"clinic-agenda/internal/usecase/commands"
	"clinic-agenda/internal/usecase/shared"
	commandsmock "clinic-agenda/tests/mock/commands"
	sharedmock "clinic-agenda/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	reads    *sharedmock.MockCommandReads
	tx       *sharedmock.MockTx
	locks    *sharedmock.MockLockRepository
	payments *sharedmock.MockPaymentRepository
	bookings *sharedmock.MockBookingRepository
	patients *sharedmock.MockPatientRepository
	tokens   *sharedmock.MockActionTokenRepository
	gateway  *commandsmock.MockPaymentGateway
	notifier *commandsmock.MockNotifier
	clk      *clock.MockClock
	checkout commands.CheckoutCommands

	svc *shared.ServiceContext
}

func (s *CheckoutTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.locks = sharedmock.NewMockLockRepository(s.ctrl)
	s.payments = sharedmock.NewMockPaymentRepository(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.patients = sharedmock.NewMockPatientRepository(s.ctrl)
	s.tokens = sharedmock.NewMockActionTokenRepository(s.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.notifier = commandsmock.NewMockNotifier(s.ctrl)
	s.clk = clock.NewMockClock(testNow)

	s.uow.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()
	s.tx.EXPECT().Locks().Return(s.locks).AnyTimes()
	s.tx.EXPECT().Payments().Return(s.payments).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Patients().Return(s.patients).AnyTimes()
	s.tx.EXPECT().ActionTokens().Return(s.tokens).AnyTimes()

	s.svc = &shared.ServiceContext{
		LinkID:           uuid.New(),
		TenantID:         uuid.New(),
		ServiceID:        uuid.New(),
		ProfessionalID:   uuid.New(),
		ServiceName:      "Limpeza de Pele",
		ProfessionalName: "Dra. Marina Lopes",
		DurationMin:      60,
		PriceCents:       15000,
		Currency:         "BRL",
		RequiresPayment:  true,
		PaymentMode:      shared.PaymentModeFull,
		MinAdvanceHours:  24,
		Timezone:         "America/Sao_Paulo",
		Active:           true,
	}

	s.checkout = commands.NewCheckoutCommands(
		s.uow, s.gateway, s.notifier, s.clk,
		config.BookingConfig{LockTTL: 15 * time.Minute, ActionTokenTTL: 72 * time.Hour},
		config.GatewayConfig{Provider: "mercadopago", ReturnURL: "https://clinic.example/return"},
	)
}

func (s *CheckoutTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}

func (s *CheckoutTestSuite) params() commands.CreateCheckoutParams {
	return commands.CreateCheckoutParams{
		LinkToken:     "limpeza-de-pele",
		StartAt:       testNow.Add(48 * time.Hour),
		EndAt:         testNow.Add(49 * time.Hour),
		CustomerName:  "Ana Souza",
		CustomerEmail: "ana@example.com",
		Patient: shared.PatientDraft{
			FullName:       "Ana Souza",
			Email:          "ana@example.com",
			Phone:          "+5511999990000",
			DocumentNumber: "12345678900",
		},
		IdempotencyKey: uuid.New(),
	}
}

func (s *CheckoutTestSuite) expectLink() {
	s.reads.EXPECT().LinkByToken(gomock.Any(), "limpeza-de-pele").Return(s.svc, nil)
}

func (s *CheckoutTestSuite) expectNoReplayPayment(key uuid.UUID) {
	s.reads.EXPECT().PaymentByIdempotencyKey(gomock.Any(), s.svc.TenantID, key).
		Return(nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound))
}

func (s *CheckoutTestSuite) expectFreeSlot() {
	s.reads.EXPECT().ConfirmedBookingsOverlapping(gomock.Any(), s.svc.ProfessionalID, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	s.reads.EXPECT().ActiveLocksOverlapping(gomock.Any(), s.svc.ProfessionalID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
}

func (s *CheckoutTestSuite) TestFreeServiceConfirmsDirectly() {
	s.svc.RequiresPayment = false
	params := s.params()

	s.expectLink()
	s.reads.EXPECT().BookingByIdempotencyKey(gomock.Any(), s.svc.TenantID, params.IdempotencyKey).
		Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))
	s.expectFreeSlot()

	patientID := uuid.New()
	s.locks.EXPECT().ExpireDueForProfessional(gomock.Any(), s.svc.ProfessionalID, testNow).Return(nil)
	s.patients.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, draft shared.PatientDraft) (uuid.UUID, error) {
			s.Equal(s.svc.TenantID, draft.TenantID)
			s.Equal("12345678900", draft.DocumentNumber)
			return patientID, nil
		},
	)

	var created *booking.Booking
	s.bookings.EXPECT().CreateConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b *booking.Booking, key *uuid.UUID) error {
			s.Require().NotNil(key)
			s.Equal(params.IdempotencyKey, *key)
			created = b
			return nil
		},
	)
	s.tokens.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().BookingConfirmed(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, n commands.BookingNotification) {
			s.NotEmpty(n.ActionToken)
			s.Equal("Limpeza de Pele", n.ServiceName)
		},
	)

	result, err := s.checkout.CreateCheckout(context.Background(), params)
	s.Require().NoError(err)

	s.Equal(commands.CheckoutStatusConfirmed, result.Status)
	s.False(result.IsReplayed)
	s.Require().NotNil(result.BookingID)
	s.Equal(created.ID(), *result.BookingID)
	s.Nil(result.PaymentID)
	s.Equal(patientID, created.PatientID())
}

func (s *CheckoutTestSuite) TestPaidServiceOpensCheckoutSession() {
	params := s.params()

	s.expectLink()
	s.expectNoReplayPayment(params.IdempotencyKey)
	s.expectFreeSlot()

	s.locks.EXPECT().ExpireDueForProfessional(gomock.Any(), s.svc.ProfessionalID, testNow).Return(nil)
	s.patients.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

	var heldLock *booking.Lock
	s.locks.EXPECT().Acquire(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l *booking.Lock) error {
			s.Equal(testNow.Add(15*time.Minute), l.ExpiresAt())
			heldLock = l
			return nil
		},
	)

	var pendingPay *payment.Payment
	s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *payment.Payment) error {
			s.Equal(int64(15000), p.AmountCents())
			s.Equal("mercadopago", p.Provider())
			s.Require().NotNil(p.LockID())
			pendingPay = p
			return nil
		},
	)

	s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p commands.CheckoutSessionParams) (*commands.CheckoutSession, error) {
			s.Equal(pendingPay.ID().String(), p.ExternalReference)
			s.Equal(int64(15000), p.AmountCents)
			s.Equal("https://clinic.example/return", p.ReturnURL)
			return &commands.CheckoutSession{ProviderRef: "pref-1", RedirectURL: "https://pay.example/pref-1"}, nil
		},
	)
	s.payments.EXPECT().AttachSession(gomock.Any(), gomock.Any(), "pref-1", "https://pay.example/pref-1").Return(nil)

	result, err := s.checkout.CreateCheckout(context.Background(), params)
	s.Require().NoError(err)

	s.Equal(commands.CheckoutStatusPendingPayment, result.Status)
	s.Nil(result.BookingID)
	s.Require().NotNil(result.LockToken)
	s.Equal(heldLock.Token(), *result.LockToken)
	s.Require().NotNil(result.RedirectURL)
	s.Equal("https://pay.example/pref-1", *result.RedirectURL)
	s.Require().NotNil(result.ExpiresAt)
	s.Equal(heldLock.ExpiresAt(), *result.ExpiresAt)
}

func (s *CheckoutTestSuite) TestReplayReturnsOriginalOutcome() {
	params := s.params()

	lockID := uuid.New()
	checkoutURL := "https://pay.example/pref-1"
	pay := payment.Reconstruct(
		uuid.New(), s.svc.TenantID, "mercadopago", params.IdempotencyKey,
		15000, "BRL", payment.StatusPending,
		nil, &checkoutURL, &lockID, nil, nil,
		testNow.Add(-time.Minute), testNow.Add(-time.Minute),
	)
	slot, err := booking.NewTimeSlot(params.StartAt, params.EndAt)
	s.Require().NoError(err)
	lock := booking.ReconstructLock(
		lockID, s.svc.TenantID, s.svc.ServiceID, s.svc.ProfessionalID, uuid.New(),
		"Ana Souza", "ana@example.com",
		slot, testNow.Add(14*time.Minute), uuid.New(), booking.LockStatusActive,
	)

	s.expectLink()
	s.reads.EXPECT().PaymentByIdempotencyKey(gomock.Any(), s.svc.TenantID, params.IdempotencyKey).Return(pay, nil)
	s.reads.EXPECT().LockByID(gomock.Any(), lockID).Return(lock, nil)

	result, err := s.checkout.CreateCheckout(context.Background(), params)
	s.Require().NoError(err)

	s.True(result.IsReplayed)
	s.Equal(commands.CheckoutStatusPendingPayment, result.Status)
	s.Require().NotNil(result.LockToken)
	s.Equal(lock.Token(), *result.LockToken)
	s.Require().NotNil(result.RedirectURL)
	s.Equal(checkoutURL, *result.RedirectURL)
}

func (s *CheckoutTestSuite) TestReplayOfPaidPaymentIsConfirmed() {
	params := s.params()

	bookingID := uuid.New()
	pay := payment.Reconstruct(
		uuid.New(), s.svc.TenantID, "mercadopago", params.IdempotencyKey,
		15000, "BRL", payment.StatusPaid,
		nil, nil, nil, &bookingID, nil,
		testNow.Add(-time.Hour), testNow.Add(-time.Minute),
	)

	s.expectLink()
	s.reads.EXPECT().PaymentByIdempotencyKey(gomock.Any(), s.svc.TenantID, params.IdempotencyKey).Return(pay, nil)

	result, err := s.checkout.CreateCheckout(context.Background(), params)
	s.Require().NoError(err)

	s.True(result.IsReplayed)
	s.Equal(commands.CheckoutStatusConfirmed, result.Status)
	s.Require().NotNil(result.BookingID)
	s.Equal(bookingID, *result.BookingID)
}

func (s *CheckoutTestSuite) TestGatewayFailureCompensates() {
	params := s.params()

	s.expectLink()
	s.expectNoReplayPayment(params.IdempotencyKey)
	s.expectFreeSlot()

	s.locks.EXPECT().ExpireDueForProfessional(gomock.Any(), s.svc.ProfessionalID, testNow).Return(nil)
	s.patients.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

	var lockID, paymentID uuid.UUID
	s.locks.EXPECT().Acquire(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l *booking.Lock) error {
			lockID = l.ID()
			return nil
		},
	)
	s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *payment.Payment) error {
			paymentID = p.ID()
			return nil
		},
	)

	s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(nil, errs.New("502 from provider"))

	// The hold and the payment row are torn down before the error surfaces.
	s.payments.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) error {
			s.Equal(paymentID, id)
			return nil
		},
	)
	s.locks.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) error {
			s.Equal(lockID, id)
			return nil
		},
	)

	_, err := s.checkout.CreateCheckout(context.Background(), params)
	s.ErrorIs(err, commands.ErrUpstreamGateway)
}

func (s *CheckoutTestSuite) TestOverlappingHoldRejectsCheckout() {
	params := s.params()

	s.expectLink()
	s.expectNoReplayPayment(params.IdempotencyKey)
	s.locks.EXPECT().ExpireDueForProfessional(gomock.Any(), s.svc.ProfessionalID, testNow).Return(nil)
	s.expectFreeSlot()
	s.patients.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	s.locks.EXPECT().Acquire(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("lock overlap", nil, infra.KindConflict))

	_, err := s.checkout.CreateCheckout(context.Background(), params)
	s.ErrorIs(err, commands.ErrSlotConflict)
}

func (s *CheckoutTestSuite) TestOccupiedPrecheckShortCircuits() {
	params := s.params()

	s.expectLink()
	s.expectNoReplayPayment(params.IdempotencyKey)
	s.reads.EXPECT().ConfirmedBookingsOverlapping(gomock.Any(), s.svc.ProfessionalID, gomock.Any(), gomock.Any()).
		Return([]schedule.Interval{{StartAt: params.StartAt, EndAt: params.EndAt}}, nil)

	_, err := s.checkout.CreateCheckout(context.Background(), params)
	s.ErrorIs(err, commands.ErrSlotConflict)
}

func (s *CheckoutTestSuite) TestValidationFailures() {
	s.Run("inactive link", func() {
		s.svc.Active = false
		params := s.params()
		s.expectLink()

		_, err := s.checkout.CreateCheckout(context.Background(), params)
		s.ErrorIs(err, commands.ErrLinkNotFound)
		s.svc.Active = true
	})

	s.Run("inverted slot", func() {
		params := s.params()
		params.EndAt = params.StartAt
		s.expectLink()

		_, err := s.checkout.CreateCheckout(context.Background(), params)
		s.ErrorIs(err, commands.ErrInvalidTimeSlot)
	})

	s.Run("duration mismatch", func() {
		params := s.params()
		params.EndAt = params.StartAt.Add(30 * time.Minute)
		s.expectLink()

		_, err := s.checkout.CreateCheckout(context.Background(), params)
		s.ErrorIs(err, commands.ErrDurationMismatch)
	})

	s.Run("insufficient lead time", func() {
		params := s.params()
		params.StartAt = testNow.Add(time.Hour)
		params.EndAt = params.StartAt.Add(time.Hour)
		s.expectLink()

		_, err := s.checkout.CreateCheckout(context.Background(), params)
		s.ErrorIs(err, commands.ErrInsufficientLeadTime)
	})
}
