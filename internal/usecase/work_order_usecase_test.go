package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"oficina_os/internal/domain/entities"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"
)

type fixture struct {
	repo       *mock_interfaces.MockIWorkOrderRepository
	parts      *mock_interfaces.MockIPartCatalog
	faultTypes *mock_interfaces.MockIFaultTypeCatalog
	clients    *mock_interfaces.MockIClientResolver
	notifier   *mock_interfaces.MockINotificationDispatcher
	payments   *mock_interfaces.MockIPaymentRecorder
	uc         *WorkOrderUseCase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	f := &fixture{
		repo:       mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		parts:      mock_interfaces.NewMockIPartCatalog(ctrl),
		faultTypes: mock_interfaces.NewMockIFaultTypeCatalog(ctrl),
		clients:    mock_interfaces.NewMockIClientResolver(ctrl),
		notifier:   mock_interfaces.NewMockINotificationDispatcher(ctrl),
		payments:   mock_interfaces.NewMockIPaymentRecorder(ctrl),
	}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	f.uc = NewWorkOrderUseCase(f.repo, f.parts, f.faultTypes, f.clients, f.notifier, f.payments, logger)
	return f
}

// expectSaveThrough makes Save return whatever order it receives.
func (f *fixture) expectSaveThrough() {
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o *entities.WorkOrder) (*entities.WorkOrder, error) {
			return o, nil
		},
	)
}

func storedIntervention() *entities.WorkOrder {
	return &entities.WorkOrder{
		ID:              1,
		Code:            "OS-AB12CD34",
		Kind:            entities.WorkOrderKindIntervention,
		EstablishmentID: "est-1",
		ClientID:        9,
		Item:            "Phones",
		Status:          entities.WorkOrderStatusNew,
		PaymentStatus:   entities.PaymentStatusUnpaid,
		Devices: []entities.Device{{
			ID:         11,
			OrderIndex: 0,
			Model:      "iPhone 12",
			Faults: []entities.Fault{{
				ID:          21,
				FaultTypeID: 3,
				Name:        "Broken screen",
				Price:       decimal.NewFromInt(2000),
				Status:      entities.FaultStatusPending,
			}},
		}},
	}
}

func TestWorkOrderUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("item required", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Create(ctx, CreateWorkOrderInput{Kind: entities.WorkOrderKindSimple, Item: "   "})
		if !errors.Is(err, ErrItemRequired) {
			t.Fatalf("expected ErrItemRequired, got %v", err)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Create(ctx, CreateWorkOrderInput{Kind: "warranty", Item: "TV"})
		if !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("expected ErrInvalidKind, got %v", err)
		}
	})

	t.Run("client resolution failure", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().Resolve(gomock.Any(), "est-1", 0, "Ana", "0912345678").
			Return(entities.Client{}, errors.New("db"))

		_, err := f.uc.Create(ctx, CreateWorkOrderInput{
			Kind:            entities.WorkOrderKindSimple,
			EstablishmentID: "est-1",
			Item:            "TV",
			ClientName:      "Ana",
			ClientPhone:     "0912345678",
		})
		if !errors.Is(err, ErrClientRequired) {
			t.Fatalf("expected ErrClientRequired, got %v", err)
		}
	})

	t.Run("intervention starts with one device", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().Resolve(gomock.Any(), "est-1", 9, "", "").
			Return(entities.Client{ID: 9, Name: "Ana"}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *entities.WorkOrder) (*entities.WorkOrder, error) {
				if o.Kind != entities.WorkOrderKindIntervention || len(o.Devices) != 1 {
					t.Fatalf("unexpected order: %+v", o)
				}
				if !strings.HasPrefix(o.Code, "OS-") || len(o.Code) != 11 {
					t.Fatalf("unexpected code: %q", o.Code)
				}
				if o.Status != entities.WorkOrderStatusNew || o.PaymentStatus != entities.PaymentStatusUnpaid {
					t.Fatalf("unexpected initial state: %+v", o)
				}
				o.ID = 1
				return o, nil
			},
		)

		res, err := f.uc.Create(ctx, CreateWorkOrderInput{
			Kind:            entities.WorkOrderKindIntervention,
			EstablishmentID: "est-1",
			ClientID:        9,
			Item:            "Phones",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 1 {
			t.Fatalf("expected persisted id, got %+v", res)
		}
	})

	t.Run("simple carries the flat price", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().Resolve(gomock.Any(), "est-1", 9, "", "").
			Return(entities.Client{ID: 9}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *entities.WorkOrder) (*entities.WorkOrder, error) {
				if !o.Price.Equal(decimal.NewFromInt(500)) || len(o.Devices) != 0 {
					t.Fatalf("unexpected order: %+v", o)
				}
				return o, nil
			},
		)

		_, err := f.uc.Create(ctx, CreateWorkOrderInput{
			Kind:            entities.WorkOrderKindSimple,
			EstablishmentID: "est-1",
			ClientID:        9,
			Item:            "Console unlock",
			Price:           decimal.NewFromInt(500),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.uc.Get(ctx, 0); !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), 4).Return(nil, nil)
		if _, err := f.uc.Get(ctx, 4); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_FaultParts(t *testing.T) {
	ctx := context.Background()
	part := entities.CatalogPart{
		ID:                7,
		Name:              "Screen kit",
		UnitCost:          decimal.NewFromInt(800),
		UnitPrice:         decimal.NewFromInt(1500),
		AvailableQuantity: 10,
	}

	t.Run("add part updates fault price and derived totals", func(t *testing.T) {
		f := newFixture(t)
		f.parts.EXPECT().GetByID(gomock.Any(), 7).Return(part, nil)
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(storedIntervention(), nil)
		f.expectSaveThrough()

		res, err := f.uc.AddFaultPart(ctx, 1, 0, 3, 7, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Devices[0].Faults[0].Price.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("expected fault price 5000, got %s", res.Devices[0].Faults[0].Price)
		}
		if !res.Price.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("expected order price 5000, got %s", res.Price)
		}
		if !res.Cost.Equal(decimal.NewFromInt(1600)) {
			t.Fatalf("expected order cost 1600, got %s", res.Cost)
		}
	})

	t.Run("stock exceeded is surfaced and nothing is saved", func(t *testing.T) {
		f := newFixture(t)
		low := part
		low.AvailableQuantity = 1
		f.parts.EXPECT().GetByID(gomock.Any(), 7).Return(low, nil)
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(storedIntervention(), nil)

		_, err := f.uc.AddFaultPart(ctx, 1, 0, 3, 7, 2)
		if !errors.Is(err, entities.ErrStockExceeded) {
			t.Fatalf("expected ErrStockExceeded, got %v", err)
		}
	})

	t.Run("unknown catalog part", func(t *testing.T) {
		f := newFixture(t)
		f.parts.EXPECT().GetByID(gomock.Any(), 99).Return(entities.CatalogPart{}, nil)
		if _, err := f.uc.AddFaultPart(ctx, 1, 0, 3, 99, 1); !errors.Is(err, ErrCatalogPartNotFound) {
			t.Fatalf("expected ErrCatalogPartNotFound, got %v", err)
		}
	})

	t.Run("remove part reverses its contribution", func(t *testing.T) {
		f := newFixture(t)
		stored := storedIntervention()
		stored.Devices[0].Faults[0].Parts = []entities.PartAllocation{{
			CatalogPartID: 7, Quantity: 2,
			UnitCost: decimal.NewFromInt(800), UnitPrice: decimal.NewFromInt(1500),
		}}
		stored.Devices[0].Faults[0].Price = decimal.NewFromInt(5000)
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(stored, nil)
		f.expectSaveThrough()

		res, err := f.uc.RemoveFaultPart(ctx, 1, 0, 3, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Devices[0].Faults[0].Price.Equal(decimal.NewFromInt(2000)) {
			t.Fatalf("expected fault price 2000, got %s", res.Devices[0].Faults[0].Price)
		}
		if !res.Cost.IsZero() {
			t.Fatalf("expected zero cost, got %s", res.Cost)
		}
	})
}

func TestWorkOrderUseCase_Devices(t *testing.T) {
	ctx := context.Background()

	t.Run("removing the last device is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(storedIntervention(), nil)

		_, err := f.uc.RemoveDevice(ctx, 1, 0)
		if !errors.Is(err, entities.ErrMinimumDeviceRequired) {
			t.Fatalf("expected ErrMinimumDeviceRequired, got %v", err)
		}
	})

	t.Run("toggle fault attaches and detaches", func(t *testing.T) {
		f := newFixture(t)
		ft := entities.FaultType{ID: 4, Name: "Water damage"}
		f.faultTypes.EXPECT().GetByID(gomock.Any(), 4).Return(ft, nil).Times(2)
		stored := storedIntervention()
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(stored, nil).Times(2)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *entities.WorkOrder) (*entities.WorkOrder, error) {
				return o, nil
			},
		).Times(2)

		res, err := f.uc.ToggleFault(ctx, 1, 0, 4, decimal.NewFromInt(3500))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Devices[0].Faults) != 2 {
			t.Fatalf("expected 2 faults, got %d", len(res.Devices[0].Faults))
		}
		if !res.Price.Equal(decimal.NewFromInt(5500)) {
			t.Fatalf("expected total 5500, got %s", res.Price)
		}

		res, err = f.uc.ToggleFault(ctx, 1, 0, 4, decimal.Zero)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Devices[0].Faults) != 1 {
			t.Fatalf("expected fault set restored, got %d", len(res.Devices[0].Faults))
		}
	})

	t.Run("unknown fault type", func(t *testing.T) {
		f := newFixture(t)
		f.faultTypes.EXPECT().GetByID(gomock.Any(), 99).Return(entities.FaultType{}, nil)
		if _, err := f.uc.ToggleFault(ctx, 1, 0, 99, decimal.Zero); !errors.Is(err, ErrFaultTypeNotFound) {
			t.Fatalf("expected ErrFaultTypeNotFound, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("ready_for_pickup stamps and notifies once", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(storedIntervention(), nil)
		f.expectSaveThrough()
		f.clients.EXPECT().GetByID(gomock.Any(), 9).
			Return(entities.Client{ID: 9, Name: "Ana", Phone: "0912345678"}, nil)
		f.notifier.EXPECT().Send(gomock.Any(), "0912345678", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, message string) error {
				if !strings.Contains(message, "Ana") || !strings.Contains(message, "Phones") || !strings.Contains(message, "2000.00") {
					t.Fatalf("unexpected message: %q", message)
				}
				return nil
			},
		).Times(1)

		res, err := f.uc.UpdateStatus(ctx, 1, entities.WorkOrderStatusReadyForPickup)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CompletedAt == nil {
			t.Fatalf("expected completed_at stamped")
		}
	})

	t.Run("repeating the save at the same status does nothing", func(t *testing.T) {
		f := newFixture(t)
		stored := storedIntervention()
		stored.Status = entities.WorkOrderStatusReadyForPickup
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(stored, nil)
		// No Save, no Send expected.

		res, err := f.uc.UpdateStatus(ctx, 1, entities.WorkOrderStatusReadyForPickup)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.WorkOrderStatusReadyForPickup {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("notification failure does not fail the transition", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(storedIntervention(), nil)
		f.expectSaveThrough()
		f.clients.EXPECT().GetByID(gomock.Any(), 9).
			Return(entities.Client{ID: 9, Name: "Ana", Phone: "0912345678"}, nil)
		f.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("gateway down"))

		res, err := f.uc.UpdateStatus(ctx, 1, entities.WorkOrderStatusReadyForPickup)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CompletedAt == nil {
			t.Fatalf("expected transition kept")
		}
	})

	t.Run("device without model blocks progress", func(t *testing.T) {
		f := newFixture(t)
		stored := storedIntervention()
		stored.Devices[0].Model = ""
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(stored, nil)

		_, err := f.uc.UpdateStatus(ctx, 1, entities.WorkOrderStatusDiagnosing)
		if !errors.Is(err, ErrDeviceModelRequired) {
			t.Fatalf("expected ErrDeviceModelRequired, got %v", err)
		}
	})

	t.Run("device without faults blocks progress", func(t *testing.T) {
		f := newFixture(t)
		stored := storedIntervention()
		stored.Devices[0].Faults = nil
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(stored, nil)

		_, err := f.uc.UpdateStatus(ctx, 1, entities.WorkOrderStatusDiagnosing)
		if !errors.Is(err, ErrDeviceFaultRequired) {
			t.Fatalf("expected ErrDeviceFaultRequired, got %v", err)
		}
	})

	t.Run("cancel skips tree validation", func(t *testing.T) {
		f := newFixture(t)
		stored := storedIntervention()
		stored.Devices[0].Model = ""
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(stored, nil)
		f.expectSaveThrough()

		res, err := f.uc.UpdateStatus(ctx, 1, entities.WorkOrderStatusCancelled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.WorkOrderStatusCancelled {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})
}

func TestWorkOrderUseCase_RecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("paid resyncs to the computed total", func(t *testing.T) {
		f := newFixture(t)
		stored := storedIntervention()
		stored.Devices[0].Faults = []entities.Fault{
			{FaultTypeID: 3, Price: decimal.NewFromInt(2000)},
			{FaultTypeID: 4, Price: decimal.NewFromInt(3500)},
		}
		stored.Devices = append(stored.Devices, entities.Device{
			OrderIndex: 1, Model: "Galaxy S21",
			Faults: []entities.Fault{
				{FaultTypeID: 3, Price: decimal.NewFromInt(2000)},
				{FaultTypeID: 4, Price: decimal.NewFromInt(3500)},
			},
		})
		stored.PaymentStatus = entities.PaymentStatusPartial
		stored.PaidAmount = decimal.NewFromInt(4000)
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(stored, nil)
		f.expectSaveThrough()
		f.payments.EXPECT().Append(gomock.Any(), 1, gomock.Any(), "cash").DoAndReturn(
			func(_ context.Context, _ int, amount decimal.Decimal, _ string) error {
				if !amount.Equal(decimal.NewFromInt(7000)) {
					t.Fatalf("expected ledger entry 7000, got %s", amount)
				}
				return nil
			},
		)

		res, err := f.uc.RecordPayment(ctx, 1, entities.PaymentStatusPaid, decimal.NewFromInt(4000), "cash")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.PaidAmount.Equal(decimal.NewFromInt(11000)) {
			t.Fatalf("expected paid amount 11000, got %s", res.PaidAmount)
		}
	})

	t.Run("unpaid never touches the ledger", func(t *testing.T) {
		f := newFixture(t)
		stored := storedIntervention()
		stored.PaymentStatus = entities.PaymentStatusPartial
		stored.PaidAmount = decimal.NewFromInt(500)
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(stored, nil)
		f.expectSaveThrough()

		res, err := f.uc.RecordPayment(ctx, 1, entities.PaymentStatusUnpaid, decimal.Zero, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.PaidAmount.IsZero() {
			t.Fatalf("expected zero paid amount, got %s", res.PaidAmount)
		}
	})

	t.Run("partial clamps to total before recording", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(storedIntervention(), nil)
		f.expectSaveThrough()
		f.payments.EXPECT().Append(gomock.Any(), 1, gomock.Any(), "card").DoAndReturn(
			func(_ context.Context, _ int, amount decimal.Decimal, _ string) error {
				if !amount.Equal(decimal.NewFromInt(2000)) {
					t.Fatalf("expected clamped entry 2000, got %s", amount)
				}
				return nil
			},
		)

		res, err := f.uc.RecordPayment(ctx, 1, entities.PaymentStatusPartial, decimal.NewFromInt(9999), "card")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.PaidAmount.Equal(decimal.NewFromInt(2000)) {
			t.Fatalf("expected paid amount 2000, got %s", res.PaidAmount)
		}
	})
}

func TestWorkOrderUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), 8).Return(nil, nil)
		if err := f.uc.Delete(ctx, 8); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), 1).Return(storedIntervention(), nil)
		f.repo.EXPECT().Delete(gomock.Any(), 1).Return(nil)
		if err := f.uc.Delete(ctx, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
