package jetstream_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
	"github.com/tagin-labs/tagin-verifier/internal/messaging"
	"github.com/tagin-labs/tagin-verifier/internal/mocks"
	"github.com/tagin-labs/tagin-verifier/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func testPublisherConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "REGISTRY_EVENTS",
		MaxReconnects:  5,
		ReconnectWait:  time.Second,
		ConnectionName: "test-publisher",
	}
}

func setupPublisher(t *testing.T) (*mocks.MockNatsConn, *mocks.MockJetStream, *mocks.MockJSON, func() (messaging.Publisher, error)) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)
	natsJS := mocks.NewMockNatsJetStream(ctrl)

	natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nc, js, nil)

	construct := func() (messaging.Publisher, error) {
		return jetstream.NewPublisher(context.Background(), testPublisherConfig(), natsJS, jsonAdapter)
	}

	return nc, js, jsonAdapter, construct
}

func TestNewPublisher_CreatesStream(t *testing.T) {
	nc, js, _, construct := setupPublisher(t)

	js.
		EXPECT().
		CreateOrUpdateStream(gomock.Any(), natsjs.StreamConfig{
			Name:     "REGISTRY_EVENTS",
			Subjects: []string{"registry.events.>"},
		}).
		Return(nil, nil)

	pub, err := construct()
	assert.NoError(t, err)
	assert.NotNil(t, pub)

	nc.EXPECT().Close()
	pub.Close()
}

func TestNewPublisher_StreamCreationFails(t *testing.T) {
	nc, js, _, construct := setupPublisher(t)

	js.
		EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	// Connection is closed when stream setup fails
	nc.EXPECT().Close()

	pub, err := construct()
	assert.Error(t, err)
	assert.Nil(t, pub)
	assert.Contains(t, err.Error(), "failed to create or update stream")
}

func TestPublishEvent_RoutesByEventType(t *testing.T) {
	nc, js, jsonAdapter, construct := setupPublisher(t)

	js.
		EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	pub, err := construct()
	assert.NoError(t, err)

	event := &domain.RegistryEvent{
		EventType:   domain.RegistryEventTransfer,
		TokenID:     42,
		FromAddress: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		ToAddress:   "0x8617E340B3D01FA5F11F306F4090FD50E238070D",
		TxHash:      "0xtx",
		BlockNumber: 1200,
	}

	payload := []byte(`{"event_type":"transfer"}`)
	jsonAdapter.
		EXPECT().
		Marshal(event).
		Return(payload, nil)

	js.
		EXPECT().
		Publish(gomock.Any(), "registry.events.transfer", payload).
		Return(&natsjs.PubAck{Stream: "REGISTRY_EVENTS"}, nil)

	assert.NoError(t, pub.PublishEvent(context.Background(), event))

	nc.EXPECT().Close()
	pub.Close()
}

func TestPublishEvent_PublishFails(t *testing.T) {
	nc, js, jsonAdapter, construct := setupPublisher(t)

	js.
		EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	pub, err := construct()
	assert.NoError(t, err)

	event := &domain.RegistryEvent{
		EventType:   domain.RegistryEventMint,
		TokenID:     1,
		TxHash:      "0xtx",
		BlockNumber: 10,
	}

	jsonAdapter.
		EXPECT().
		Marshal(event).
		Return([]byte(`{}`), nil)

	js.
		EXPECT().
		Publish(gomock.Any(), "registry.events.mint", gomock.Any()).
		Return(nil, assert.AnError)

	err = pub.PublishEvent(context.Background(), event)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")

	nc.EXPECT().Close()
	pub.Close()
}

func TestClose_SignalsCloseChan(t *testing.T) {
	nc, js, _, construct := setupPublisher(t)

	js.
		EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	pub, err := construct()
	assert.NoError(t, err)

	select {
	case <-pub.CloseChan():
		t.Fatal("close channel should stay open until Close is called")
	default:
	}

	nc.EXPECT().Close()
	pub.Close()
	// Close is idempotent
	pub.Close()

	select {
	case <-pub.CloseChan():
	default:
		t.Fatal("close channel should be closed after Close")
	}
}
