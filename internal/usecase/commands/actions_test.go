//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"clinic-agenda/internal/domain/actiontoken"
	"clinic-agenda/internal/domain/payment"
	"clinic-agenda/internal/infra"
	"clinic-agenda/internal/pkg/clock"
	"clinic-agenda/internal/pkg/config"
	"clinic-agenda/internal/usecase/commands"
	"clinic-agenda/internal/usecase/shared"
	commandsmock "clinic-agenda/tests/mock/commands"
	sharedmock "clinic-agenda/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ActionsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	reads    *sharedmock.MockCommandReads
	tx       *sharedmock.MockTx
	locks    *sharedmock.MockLockRepository
	payments *sharedmock.MockPaymentRepository
	bookings *sharedmock.MockBookingRepository
	tokens   *sharedmock.MockActionTokenRepository
	notifier *commandsmock.MockNotifier
	clk      *clock.MockClock
	actions  commands.ActionCommands

	plaintext string
	token     *actiontoken.Token
	snap      *shared.BookingSnapshot
}

func (s *ActionsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.locks = sharedmock.NewMockLockRepository(s.ctrl)
	s.payments = sharedmock.NewMockPaymentRepository(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.tokens = sharedmock.NewMockActionTokenRepository(s.ctrl)
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
	s.tx.EXPECT().ActionTokens().Return(s.tokens).AnyTimes()

	bookingID := uuid.New()
	var err error
	s.token, s.plaintext, err = actiontoken.Issue(bookingID, testNow, 72*time.Hour)
	s.Require().NoError(err)

	s.snap = &shared.BookingSnapshot{
		ID:             bookingID,
		TenantID:       uuid.New(),
		ServiceID:      uuid.New(),
		ServiceName:    "Limpeza de Pele",
		ProfessionalID: uuid.New(),
		PatientID:      uuid.New(),
		CustomerName:   "Ana Souza",
		CustomerEmail:  "ana@example.com",
		StartAt:        testNow.Add(48 * time.Hour),
		EndAt:          testNow.Add(49 * time.Hour),
		Status:         "confirmed",
		CreatedAt:      testNow.Add(-time.Hour),
	}

	s.actions = commands.NewActionCommands(s.uow, s.notifier, s.clk, config.BookingConfig{
		ActionTokenTTL: 72 * time.Hour,
	})
}

func (s *ActionsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestActionsSuite(t *testing.T) {
	suite.Run(t, new(ActionsTestSuite))
}

func (s *ActionsTestSuite) expectToken() {
	s.reads.EXPECT().ActionTokenByHash(gomock.Any(), actiontoken.Hash(s.plaintext)).Return(s.token, nil)
}

func (s *ActionsTestSuite) TestInspect() {
	s.expectToken()
	s.reads.EXPECT().BookingByID(gomock.Any(), s.snap.ID).Return(s.snap, nil)

	got, err := s.actions.Inspect(context.Background(), s.plaintext)
	s.Require().NoError(err)
	s.Equal(s.snap, got)
}

func (s *ActionsTestSuite) TestInspectInvalidToken() {
	s.reads.EXPECT().ActionTokenByHash(gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("token not found", nil, infra.KindNotFound))

	_, err := s.actions.Inspect(context.Background(), "bogus")
	s.ErrorIs(err, commands.ErrActionTokenInvalid)
}

func (s *ActionsTestSuite) TestInspectExpiredToken() {
	s.expectToken()
	s.clk.Set(testNow.Add(73 * time.Hour))

	_, err := s.actions.Inspect(context.Background(), s.plaintext)
	s.ErrorIs(err, commands.ErrActionTokenExpired)
}

func (s *ActionsTestSuite) TestInspectUsedToken() {
	used := testNow.Add(-time.Minute)
	s.token = actiontoken.Reconstruct(
		s.token.ID(), s.token.BookingID(), s.token.HashValue(),
		s.token.ExpiresAt(), &used,
	)
	s.expectToken()

	_, err := s.actions.Inspect(context.Background(), s.plaintext)
	s.ErrorIs(err, commands.ErrActionTokenUsed)
}

func (s *ActionsTestSuite) TestCancelConfirmedBooking() {
	s.expectToken()
	s.reads.EXPECT().BookingByID(gomock.Any(), s.snap.ID).Return(s.snap, nil)

	s.tokens.EXPECT().Consume(gomock.Any(), s.token.ID(), testNow).Return(true, nil)
	s.bookings.EXPECT().Cancel(gomock.Any(), s.snap.ID).Return(nil)
	s.notifier.EXPECT().BookingCancelled(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, n commands.BookingNotification) {
			s.Equal(s.snap.ID, n.BookingID)
			s.Empty(n.ActionToken)
		},
	)

	got, err := s.actions.Cancel(context.Background(), s.plaintext)
	s.Require().NoError(err)
	s.Equal(s.snap.ID, got.ID)
}

func (s *ActionsTestSuite) TestCancelPaidBookingFlagsRefund() {
	paymentID := uuid.New()
	s.snap.PaymentID = &paymentID
	pay := payment.Reconstruct(
		paymentID, s.snap.TenantID, "mercadopago", uuid.New(),
		15000, "BRL", payment.StatusPaid,
		nil, nil, nil, &s.snap.ID, nil,
		testNow.Add(-time.Hour), testNow.Add(-time.Hour),
	)

	s.expectToken()
	s.reads.EXPECT().BookingByID(gomock.Any(), s.snap.ID).Return(s.snap, nil)
	s.tokens.EXPECT().Consume(gomock.Any(), s.token.ID(), testNow).Return(true, nil)
	s.bookings.EXPECT().Cancel(gomock.Any(), s.snap.ID).Return(nil)
	s.reads.EXPECT().PaymentByID(gomock.Any(), paymentID).Return(pay, nil)
	s.payments.EXPECT().MarkRefunded(gomock.Any(), paymentID, gomock.Nil()).Return(nil)
	s.notifier.EXPECT().BookingCancelled(gomock.Any(), gomock.Any())

	_, err := s.actions.Cancel(context.Background(), s.plaintext)
	s.Require().NoError(err)
}

func (s *ActionsTestSuite) TestCancelRacesConsumedToken() {
	s.expectToken()
	s.reads.EXPECT().BookingByID(gomock.Any(), s.snap.ID).Return(s.snap, nil)
	// Another request consumed the token between validation and the
	// transactional consume.
	s.tokens.EXPECT().Consume(gomock.Any(), s.token.ID(), testNow).Return(false, nil)

	_, err := s.actions.Cancel(context.Background(), s.plaintext)
	s.ErrorIs(err, commands.ErrActionTokenUsed)
}

func (s *ActionsTestSuite) TestRescheduleMovesBookingAndReissuesToken() {
	svc := &shared.ServiceContext{
		TenantID:        s.snap.TenantID,
		ServiceID:       s.snap.ServiceID,
		ProfessionalID:  s.snap.ProfessionalID,
		DurationMin:     60,
		MinAdvanceHours: 24,
		Active:          true,
	}
	newStart := testNow.Add(96 * time.Hour)

	s.expectToken()
	s.reads.EXPECT().BookingByID(gomock.Any(), s.snap.ID).Return(s.snap, nil)
	s.reads.EXPECT().ServiceContextByServiceID(gomock.Any(), s.snap.ServiceID).Return(svc, nil)

	s.tokens.EXPECT().Consume(gomock.Any(), s.token.ID(), testNow).Return(true, nil)
	s.locks.EXPECT().ExpireDueForProfessional(gomock.Any(), s.snap.ProfessionalID, testNow).Return(nil)
	s.bookings.EXPECT().UpdateSlot(gomock.Any(), s.snap.ID, gomock.Any()).Return(nil)
	s.tokens.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().BookingConfirmed(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, n commands.BookingNotification) {
			s.Equal(newStart, n.StartAt)
			s.NotEmpty(n.ActionToken)
		},
	)

	result, err := s.actions.Reschedule(context.Background(), commands.RescheduleParams{
		Token:   s.plaintext,
		StartAt: newStart,
		EndAt:   newStart.Add(time.Hour),
	})
	s.Require().NoError(err)

	s.NotEmpty(result.NewToken)
	s.NotEqual(s.plaintext, result.NewToken)
	s.Equal(newStart, result.Booking.StartAt)
}

func (s *ActionsTestSuite) TestRescheduleRejectsCancelledBooking() {
	s.snap.Status = "cancelled"
	s.expectToken()
	s.reads.EXPECT().BookingByID(gomock.Any(), s.snap.ID).Return(s.snap, nil)

	_, err := s.actions.Reschedule(context.Background(), commands.RescheduleParams{
		Token:   s.plaintext,
		StartAt: testNow.Add(96 * time.Hour),
		EndAt:   testNow.Add(97 * time.Hour),
	})
	s.ErrorIs(err, commands.ErrNotReschedulable)
}

func (s *ActionsTestSuite) TestRescheduleConflictKeepsOldSlot() {
	svc := &shared.ServiceContext{
		TenantID:        s.snap.TenantID,
		ServiceID:       s.snap.ServiceID,
		ProfessionalID:  s.snap.ProfessionalID,
		DurationMin:     60,
		MinAdvanceHours: 24,
		Active:          true,
	}
	newStart := testNow.Add(96 * time.Hour)

	s.expectToken()
	s.reads.EXPECT().BookingByID(gomock.Any(), s.snap.ID).Return(s.snap, nil)
	s.reads.EXPECT().ServiceContextByServiceID(gomock.Any(), s.snap.ServiceID).Return(svc, nil)

	s.tokens.EXPECT().Consume(gomock.Any(), s.token.ID(), testNow).Return(true, nil)
	s.locks.EXPECT().ExpireDueForProfessional(gomock.Any(), s.snap.ProfessionalID, testNow).Return(nil)
	s.bookings.EXPECT().UpdateSlot(gomock.Any(), s.snap.ID, gomock.Any()).
		Return(infra.WrapRepoErr("booking overlap", nil, infra.KindConflict))

	_, err := s.actions.Reschedule(context.Background(), commands.RescheduleParams{
		Token:   s.plaintext,
		StartAt: newStart,
		EndAt:   newStart.Add(time.Hour),
	})
	s.ErrorIs(err, commands.ErrSlotConflict)
}
