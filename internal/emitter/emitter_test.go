package emitter_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/emitter"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
	"github.com/tagin-labs/tagin-verifier/internal/messaging"
	"github.com/tagin-labs/tagin-verifier/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testEmitterMocks contains all the mocks needed for testing the emitter
type testEmitterMocks struct {
	ctrl       *gomock.Controller
	subscriber *mocks.MockSubscriber
	publisher  *mocks.MockPublisher
	store      *mocks.MockStore
	clock      *mocks.MockClock
	emitter    emitter.Emitter
}

// setupTestEmitter creates all the mocks and emitter for testing
func setupTestEmitter(t *testing.T, cfg emitter.Config) *testEmitterMocks {
	ctrl := gomock.NewController(t)

	tm := &testEmitterMocks{
		ctrl:       ctrl,
		subscriber: mocks.NewMockSubscriber(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		store:      mocks.NewMockStore(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}

	tm.emitter = emitter.NewEmitter(
		tm.subscriber,
		tm.publisher,
		tm.store,
		cfg,
		tm.clock,
	)

	return tm
}

// tearDownTestEmitter cleans up the test mocks
func tearDownTestEmitter(mocks *testEmitterMocks) {
	mocks.ctrl.Finish()
}

func defaultEmitterConfig() emitter.Config {
	return emitter.Config{
		ChainID:         domain.ChainEthereumSepolia,
		StartBlock:      0,
		CursorSaveFreq:  10,
		CursorSaveDelay: 5 * time.Second,
	}
}

func mintEvent(blockNumber uint64) *domain.RegistryEvent {
	return &domain.RegistryEvent{
		EventType:    domain.RegistryEventMint,
		TokenID:      1,
		Manufacturer: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		ToAddress:    "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		TxHash:       "0xtx",
		BlockNumber:  blockNumber,
		Timestamp:    time.Now(),
	}
}

func TestEmitter_Run_WithStartBlock(t *testing.T) {
	cfg := defaultEmitterConfig()
	cfg.StartBlock = 1000

	mocks := setupTestEmitter(t, cfg)
	defer tearDownTestEmitter(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Mock clock for Now() and Since() calls
	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).MinTimes(1)
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	event := mintEvent(1001)

	// Mock subscriber to call handler with an event
	mocks.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler interface{}) error {
			handlerFunc := handler.(messaging.EventHandler)
			_ = handlerFunc(event)

			// Cancel context to stop the emitter
			cancel()
			return nil
		})

	// Mock publisher to publish event
	mocks.publisher.
		EXPECT().
		PublishEvent(gomock.Any(), event).
		Return(nil)

	// Since lastSavedBlock starts at 0 and the event is at 1001 with
	// CursorSaveFreq 10, the cursor save fires at block 1001
	mocks.store.
		EXPECT().
		SetBlockCursor(gomock.Any(), string(domain.ChainEthereumSepolia), uint64(1001)).
		Return(nil).
		AnyTimes()

	err := mocks.emitter.Run(ctx)

	// Should return context canceled error
	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_WithLastBlockCursor(t *testing.T) {
	mocks := setupTestEmitter(t, defaultEmitterConfig())
	defer tearDownTestEmitter(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	// Mock store to return last block cursor
	mocks.store.
		EXPECT().
		GetBlockCursor(gomock.Any(), string(domain.ChainEthereumSepolia)).
		Return(uint64(500), nil)

	// Subscription should resume one block after the saved cursor
	mocks.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(501), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler interface{}) error {
			cancel()
			return nil
		})

	err := mocks.emitter.Run(ctx)

	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_WithNoLastBlockCursor(t *testing.T) {
	mocks := setupTestEmitter(t, defaultEmitterConfig())
	defer tearDownTestEmitter(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Mock store to return no last block cursor
	mocks.store.
		EXPECT().
		GetBlockCursor(gomock.Any(), string(domain.ChainEthereumSepolia)).
		Return(uint64(0), nil)

	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	// Mock subscriber to get latest block
	mocks.subscriber.
		EXPECT().
		GetLatestBlock(gomock.Any()).
		Return(uint64(1000), nil)

	mocks.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler interface{}) error {
			cancel()
			return nil
		})

	err := mocks.emitter.Run(ctx)

	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_SyncsOwnerOnTransfer(t *testing.T) {
	cfg := defaultEmitterConfig()
	cfg.StartBlock = 1000

	mocks := setupTestEmitter(t, cfg)
	defer tearDownTestEmitter(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	event := &domain.RegistryEvent{
		EventType:   domain.RegistryEventTransfer,
		TokenID:     7,
		FromAddress: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		ToAddress:   "0x8617E340B3D01FA5F11F306F4090FD50E238070D",
		TxHash:      "0xtx",
		BlockNumber: 1001,
		Timestamp:   time.Now(),
	}

	mocks.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler interface{}) error {
			handlerFunc := handler.(messaging.EventHandler)
			assert.NoError(t, handlerFunc(event))

			cancel()
			return nil
		})

	mocks.publisher.
		EXPECT().
		PublishEvent(gomock.Any(), event).
		Return(nil)

	// Transfer events update the product's owner column
	mocks.store.
		EXPECT().
		UpdateProductOwner(gomock.Any(), uint64(7), "0x8617E340B3D01FA5F11F306F4090FD50E238070D").
		Return(nil)

	mocks.store.
		EXPECT().
		SetBlockCursor(gomock.Any(), string(domain.ChainEthereumSepolia), uint64(1001)).
		Return(nil).
		AnyTimes()

	err := mocks.emitter.Run(ctx)

	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_CursorSaveByBlockFrequency(t *testing.T) {
	cfg := defaultEmitterConfig()
	cfg.StartBlock = 1000
	cfg.CursorSaveFreq = 5 // Save every 5 blocks

	mocks := setupTestEmitter(t, cfg)
	defer tearDownTestEmitter(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	// Mock subscriber to call handler with multiple events
	mocks.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler interface{}) error {
			handlerFunc := handler.(messaging.EventHandler)

			// Block 1000: 1000 - 0 >= 5, saves at 1000
			// Block 1005: 1005 - 1000 >= 5, saves at 1005
			// Block 1010: 1010 - 1005 >= 5, saves at 1010
			for _, blockNum := range []uint64{1000, 1005, 1010} {
				event := mintEvent(blockNum)

				mocks.publisher.
					EXPECT().
					PublishEvent(gomock.Any(), event).
					Return(nil)

				mocks.store.
					EXPECT().
					SetBlockCursor(gomock.Any(), string(domain.ChainEthereumSepolia), blockNum).
					Return(nil)

				if err := handlerFunc(event); err != nil {
					return err
				}
			}

			cancel()
			return nil
		})

	err := mocks.emitter.Run(ctx)

	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_GetBlockCursorError(t *testing.T) {
	mocks := setupTestEmitter(t, defaultEmitterConfig())
	defer tearDownTestEmitter(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mocks.store.
		EXPECT().
		GetBlockCursor(gomock.Any(), string(domain.ChainEthereumSepolia)).
		Return(uint64(0), assert.AnError)

	err := mocks.emitter.Run(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get block cursor")
}

func TestEmitter_Run_GetLatestBlockError(t *testing.T) {
	mocks := setupTestEmitter(t, defaultEmitterConfig())
	defer tearDownTestEmitter(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mocks.store.
		EXPECT().
		GetBlockCursor(gomock.Any(), string(domain.ChainEthereumSepolia)).
		Return(uint64(0), nil)

	mocks.subscriber.
		EXPECT().
		GetLatestBlock(gomock.Any()).
		Return(uint64(0), assert.AnError)

	err := mocks.emitter.Run(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get latest block number")
}

func TestEmitter_Run_SubscribeEventsError(t *testing.T) {
	cfg := defaultEmitterConfig()
	cfg.StartBlock = 1000

	mocks := setupTestEmitter(t, cfg)
	defer tearDownTestEmitter(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	mocks.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		Return(assert.AnError)

	err := mocks.emitter.Run(ctx)

	assert.Error(t, err)
}

func TestEmitter_Run_PublishEventError(t *testing.T) {
	cfg := defaultEmitterConfig()
	cfg.StartBlock = 1000

	mocks := setupTestEmitter(t, cfg)
	defer tearDownTestEmitter(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	mocks.subscriber.
		EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler interface{}) error {
			handlerFunc := handler.(messaging.EventHandler)
			err := handlerFunc(mintEvent(1001))
			if err != nil {
				return err
			}

			cancel()
			return nil
		})

	// Mock publisher to return error
	mocks.publisher.
		EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	err := mocks.emitter.Run(ctx)

	// Error should be returned from handler
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestEmitter_Close(t *testing.T) {
	mocks := setupTestEmitter(t, defaultEmitterConfig())
	defer tearDownTestEmitter(mocks)

	mocks.subscriber.
		EXPECT().
		Close()

	mocks.emitter.Close()
}
