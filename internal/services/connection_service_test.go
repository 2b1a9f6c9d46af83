package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cryptofolio/internal/config"
	"cryptofolio/internal/database"
	"cryptofolio/internal/models"
	"cryptofolio/internal/repositories"
	"cryptofolio/internal/repositories/repository_mocks"
	"cryptofolio/internal/secrets"
	"cryptofolio/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ConnectionServiceSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	credentialRepo *repository_mocks.MockCredentialRepositoryInterface
	balanceRepo    *repository_mocks.MockBalanceRepositoryInterface
	coinbase       *service_mocks.MockProviderAdapter
	gemini         *service_mocks.MockProviderAdapter
	ledger         *service_mocks.MockProviderAdapter
	oauth          *service_mocks.MockOAuthExchanger
	reconciler     *service_mocks.MockReconciliationServiceInterface
	syncLogger     *service_mocks.MockSyncLoggerInterface
	service        ConnectionServiceInterface
	userID         uuid.UUID
}

func (s *ConnectionServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.credentialRepo = repository_mocks.NewMockCredentialRepositoryInterface(s.ctrl)
	s.balanceRepo = repository_mocks.NewMockBalanceRepositoryInterface(s.ctrl)
	s.coinbase = service_mocks.NewMockProviderAdapter(s.ctrl)
	s.gemini = service_mocks.NewMockProviderAdapter(s.ctrl)
	s.ledger = service_mocks.NewMockProviderAdapter(s.ctrl)
	s.oauth = service_mocks.NewMockOAuthExchanger(s.ctrl)
	s.reconciler = service_mocks.NewMockReconciliationServiceInterface(s.ctrl)
	s.syncLogger = service_mocks.NewMockSyncLoggerInterface(s.ctrl)

	s.coinbase.EXPECT().Provider().Return(models.ProviderCoinbase).AnyTimes()
	s.gemini.EXPECT().Provider().Return(models.ProviderGemini).AnyTimes()
	s.ledger.EXPECT().Provider().Return(models.ProviderLedger).AnyTimes()

	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	metrics.EXPECT().IncrementCounter("connections_total", gomock.Any()).AnyTimes()

	s.service = s.newService(s.oauth, metrics)
	s.userID = uuid.New()
}

func (s *ConnectionServiceSuite) newService(oauth OAuthExchanger, metrics MetricsRecorderInterface) ConnectionServiceInterface {
	return NewConnectionService(
		s.credentialRepo,
		s.balanceRepo,
		[]ProviderAdapter{s.coinbase, s.gemini, s.ledger},
		oauth,
		s.reconciler,
		&config.SyncConfig{InitialSyncTimeout: 5 * time.Second},
		s.syncLogger,
		metrics,
		discardLogger(),
	)
}

func (s *ConnectionServiceSuite) TearDownTest() {
	s.service.Wait()
	s.ctrl.Finish()
}

func TestConnectionServiceSuite(t *testing.T) {
	suite.Run(t, new(ConnectionServiceSuite))
}

func (s *ConnectionServiceSuite) TestConnect_StoresAndStartsDetachedSync() {
	keys := &models.APIKeyPayload{APIKey: "key", APISecret: "secret"}
	ctx, cancel := context.WithCancel(context.Background())

	s.gemini.EXPECT().Validate(gomock.Any(), keys).Return(true, nil)
	s.credentialRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, credential *models.Credential) error {
			s.Equal(s.userID, credential.UserID)
			s.Equal(models.ProviderGemini, credential.Provider)
			s.Same(keys, credential.Payload)
			return nil
		})
	s.syncLogger.EXPECT().LogConnectionLinked(gomock.Any(), s.userID, models.ProviderGemini)

	started := make(chan struct{})
	s.reconciler.EXPECT().Sync(gomock.Any(), s.userID, models.ProviderGemini).DoAndReturn(
		func(syncCtx context.Context, _ uuid.UUID, _ models.Provider) error {
			<-started
			s.NoError(syncCtx.Err())
			_, hasDeadline := syncCtx.Deadline()
			s.True(hasDeadline)
			return nil
		})

	s.Require().NoError(s.service.Connect(ctx, s.userID, keys))

	cancel()
	close(started)
	s.service.Wait()
}

func (s *ConnectionServiceSuite) TestConnect_InitialSyncFailureIsNotReturned() {
	keys := &models.APIKeyPayload{APIKey: "key", APISecret: "secret"}

	s.gemini.EXPECT().Validate(gomock.Any(), keys).Return(true, nil)
	s.credentialRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	s.syncLogger.EXPECT().LogConnectionLinked(gomock.Any(), s.userID, models.ProviderGemini)
	s.reconciler.EXPECT().Sync(gomock.Any(), s.userID, models.ProviderGemini).Return(models.ErrRemoteUnavailable)

	s.NoError(s.service.Connect(context.Background(), s.userID, keys))
	s.service.Wait()
}

func (s *ConnectionServiceSuite) TestConnect_RejectedCredentials() {
	keys := &models.APIKeyPayload{APIKey: "key", APISecret: "wrong"}

	s.gemini.EXPECT().Validate(gomock.Any(), keys).Return(false, nil)
	s.credentialRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	err := s.service.Connect(context.Background(), s.userID, keys)
	s.ErrorIs(err, models.ErrInvalidCredentials)
}

func (s *ConnectionServiceSuite) TestConnect_LedgerParseError() {
	file := &models.FileImportPayload{SourceFilename: "export.csv", Content: "garbage"}

	s.ledger.EXPECT().Validate(gomock.Any(), file).Return(false, &models.ParseError{Reason: "file has no data rows"})

	err := s.service.Connect(context.Background(), s.userID, file)
	s.ErrorIs(err, models.ErrParse)
}

func (s *ConnectionServiceSuite) TestConnect_ProviderUnreachable() {
	keys := &models.APIKeyPayload{APIKey: "key", APISecret: "secret"}

	s.gemini.EXPECT().Validate(gomock.Any(), keys).Return(false,
		&models.ProviderError{Provider: models.ProviderGemini, Kind: models.ErrRemoteUnavailable})

	err := s.service.Connect(context.Background(), s.userID, keys)
	s.ErrorIs(err, models.ErrRemoteUnavailable)
}

func (s *ConnectionServiceSuite) TestConnect_PersistenceFailureSkipsSync() {
	keys := &models.APIKeyPayload{APIKey: "key", APISecret: "secret"}

	s.gemini.EXPECT().Validate(gomock.Any(), keys).Return(true, nil)
	s.credentialRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("read-only transaction"))
	s.reconciler.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := s.service.Connect(context.Background(), s.userID, keys)
	s.ErrorIs(err, models.ErrPersistence)
}

func (s *ConnectionServiceSuite) TestConnect_NilPayload() {
	err := s.service.Connect(context.Background(), s.userID, nil)
	s.ErrorIs(err, models.ErrPayloadMismatch)
}

func (s *ConnectionServiceSuite) TestConnectOAuth_ExchangesThenConnects() {
	token := &models.OAuthTokenPayload{AccessToken: "access", RefreshToken: "refresh"}

	s.oauth.EXPECT().ExchangeCode(gomock.Any(), "auth-code").Return(token, nil)
	s.coinbase.EXPECT().Validate(gomock.Any(), token).Return(true, nil)
	s.credentialRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	s.syncLogger.EXPECT().LogConnectionLinked(gomock.Any(), s.userID, models.ProviderCoinbase)
	s.reconciler.EXPECT().Sync(gomock.Any(), s.userID, models.ProviderCoinbase).Return(nil)

	s.NoError(s.service.ConnectOAuth(context.Background(), s.userID, "auth-code"))
	s.service.Wait()
}

func (s *ConnectionServiceSuite) TestConnectOAuth_RejectedCode() {
	s.oauth.EXPECT().ExchangeCode(gomock.Any(), "stale-code").Return(nil,
		&models.ProviderError{Provider: models.ProviderCoinbase, StatusCode: 400, Kind: models.ErrInvalidCredentials})

	err := s.service.ConnectOAuth(context.Background(), s.userID, "stale-code")
	s.ErrorIs(err, models.ErrInvalidCredentials)
}

func (s *ConnectionServiceSuite) TestOAuthNotConfigured() {
	service := s.newService(nil, nil)

	err := service.ConnectOAuth(context.Background(), s.userID, "code")
	s.ErrorIs(err, models.ErrUnsupportedProvider)

	_, err = service.AuthorizeURL("state")
	s.ErrorIs(err, models.ErrUnsupportedProvider)
}

func (s *ConnectionServiceSuite) TestAuthorizeURL() {
	s.oauth.EXPECT().AuthorizeURL("xyz").Return("https://login.example.com/oauth?state=xyz")

	url, err := s.service.AuthorizeURL("xyz")
	s.Require().NoError(err)
	s.Contains(url, "state=xyz")
}

func (s *ConnectionServiceSuite) TestUnlink_RemovesBalancesThenCredential() {
	gomock.InOrder(
		s.credentialRepo.EXPECT().Exists(gomock.Any(), s.userID, models.ProviderGemini).Return(true, nil),
		s.balanceRepo.EXPECT().DeleteByUserAndProvider(gomock.Any(), s.userID, models.ProviderGemini).Return(int64(3), nil),
		s.credentialRepo.EXPECT().Delete(gomock.Any(), s.userID, models.ProviderGemini).Return(nil),
	)
	s.syncLogger.EXPECT().LogConnectionUnlinked(gomock.Any(), s.userID, models.ProviderGemini, int64(3))

	s.NoError(s.service.Unlink(context.Background(), s.userID, models.ProviderGemini))
}

func (s *ConnectionServiceSuite) TestUnlink_NotFoundLeavesBalances() {
	s.credentialRepo.EXPECT().Exists(gomock.Any(), s.userID, models.ProviderLedger).Return(false, nil)
	s.balanceRepo.EXPECT().DeleteByUserAndProvider(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.credentialRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := s.service.Unlink(context.Background(), s.userID, models.ProviderLedger)
	s.ErrorIs(err, models.ErrNotFound)
}

func (s *ConnectionServiceSuite) TestUnlink_LookupFailure() {
	s.credentialRepo.EXPECT().Exists(gomock.Any(), s.userID, models.ProviderGemini).Return(false, errors.New("timeout"))
	s.balanceRepo.EXPECT().DeleteByUserAndProvider(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := s.service.Unlink(context.Background(), s.userID, models.ProviderGemini)
	s.ErrorIs(err, models.ErrPersistence)
}

func (s *ConnectionServiceSuite) TestUnlink_CredentialRemovedConcurrently() {
	s.credentialRepo.EXPECT().Exists(gomock.Any(), s.userID, models.ProviderGemini).Return(true, nil)
	s.balanceRepo.EXPECT().DeleteByUserAndProvider(gomock.Any(), s.userID, models.ProviderGemini).Return(int64(0), nil)
	s.credentialRepo.EXPECT().Delete(gomock.Any(), s.userID, models.ProviderGemini).Return(repositories.ErrCredentialNotFound)

	err := s.service.Unlink(context.Background(), s.userID, models.ProviderGemini)
	s.ErrorIs(err, models.ErrNotFound)
}

func (s *ConnectionServiceSuite) TestUnlink_BalanceDeleteFailureKeepsCredential() {
	s.credentialRepo.EXPECT().Exists(gomock.Any(), s.userID, models.ProviderGemini).Return(true, nil)
	s.balanceRepo.EXPECT().DeleteByUserAndProvider(gomock.Any(), s.userID, models.ProviderGemini).Return(int64(0), errors.New("locked"))
	s.credentialRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := s.service.Unlink(context.Background(), s.userID, models.ProviderGemini)
	s.ErrorIs(err, models.ErrPersistence)
}

func (s *ConnectionServiceSuite) TestStatus_ReportsEveryProvider() {
	linkedAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	importedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	s.credentialRepo.EXPECT().ListByUser(gomock.Any(), s.userID).Return([]*models.Credential{
		{UserID: s.userID, Provider: models.ProviderCoinbase, Payload: &models.OAuthTokenPayload{}, CreatedAt: linkedAt},
		{UserID: s.userID, Provider: models.ProviderLedger, CreatedAt: linkedAt, Payload: &models.FileImportPayload{
			SourceFilename: "ledger.csv",
			ImportedAt:     importedAt,
		}},
	}, nil)

	status, err := s.service.Status(context.Background(), s.userID)
	s.Require().NoError(err)
	s.Len(status, 3)

	s.True(status[models.ProviderCoinbase].Connected)
	s.Equal(linkedAt, *status[models.ProviderCoinbase].LinkedAt)
	s.False(status[models.ProviderGemini].Connected)
	s.Nil(status[models.ProviderGemini].LinkedAt)

	ledger := status[models.ProviderLedger]
	s.True(ledger.Connected)
	s.Equal("ledger.csv", ledger.SourceFilename)
	s.Equal(importedAt, *ledger.ImportedAt)
}

func (s *ConnectionServiceSuite) TestPurgeUser_BalancesFirst() {
	gomock.InOrder(
		s.balanceRepo.EXPECT().DeleteAllForUser(gomock.Any(), s.userID).Return(int64(7), nil),
		s.credentialRepo.EXPECT().DeleteAllForUser(gomock.Any(), s.userID).Return(int64(2), nil),
	)
	s.syncLogger.EXPECT().LogUserPurged(gomock.Any(), s.userID, int64(2), int64(7))

	s.NoError(s.service.PurgeUser(context.Background(), s.userID))
}

func TestConnectSyncUnlink_StatusReportsDisconnected(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cipher, err := secrets.NewCipher("connection-lifecycle-key")
	require.NoError(t, err)
	credentialRepo := repositories.NewCredentialRepository(db.DB, cipher)
	balanceRepo := repositories.NewBalanceRepository(db.DB)

	adapter := service_mocks.NewMockProviderAdapter(ctrl)
	adapter.EXPECT().Provider().Return(models.ProviderGemini).AnyTimes()
	adapter.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(true, nil)
	adapter.EXPECT().FetchBalances(gomock.Any(), gomock.Any()).Return([]models.Holding{
		{Currency: "BTC", Amount: decimal.RequireFromString("0.5")},
		{Currency: "ETH", Amount: decimal.RequireFromString("4")},
	}, nil).AnyTimes()

	syncLogger := NewSyncLogger(discardLogger())
	adapters := []ProviderAdapter{adapter}
	reconciler := NewReconciliationService(credentialRepo, balanceRepo, adapters, nil, syncLogger, nil, discardLogger())
	service := NewConnectionService(credentialRepo, balanceRepo, adapters, nil, reconciler,
		&config.SyncConfig{InitialSyncTimeout: 5 * time.Second}, syncLogger, nil, discardLogger())

	ctx := context.Background()
	userID := uuid.New()
	otherUser := uuid.New()

	require.NoError(t, balanceRepo.UpsertBatch(ctx, []*models.Balance{
		{UserID: otherUser, Provider: models.ProviderGemini, Currency: "BTC", Amount: decimal.RequireFromString("9")},
	}))

	require.NoError(t, service.Connect(ctx, userID, &models.APIKeyPayload{APIKey: "key-12345", APISecret: "secret-12345"}))
	service.Wait()
	require.NoError(t, reconciler.Sync(ctx, userID, models.ProviderGemini))

	rows, err := balanceRepo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NoError(t, service.Unlink(ctx, userID, models.ProviderGemini))

	status, err := service.Status(ctx, userID)
	require.NoError(t, err)
	assert.False(t, status[models.ProviderGemini].Connected)
	assert.Nil(t, status[models.ProviderGemini].LinkedAt)

	rows, err = balanceRepo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = credentialRepo.Get(ctx, userID, models.ProviderGemini)
	assert.ErrorIs(t, err, repositories.ErrCredentialNotFound)

	others, err := balanceRepo.ListByUser(ctx, otherUser)
	require.NoError(t, err)
	assert.Len(t, others, 1)

	assert.ErrorIs(t, service.Unlink(ctx, userID, models.ProviderGemini), models.ErrNotFound)
}

func TestUnlink_WithoutCredentialKeepsBalances(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	cipher, err := secrets.NewCipher("connection-lifecycle-key")
	require.NoError(t, err)
	credentialRepo := repositories.NewCredentialRepository(db.DB, cipher)
	balanceRepo := repositories.NewBalanceRepository(db.DB)

	service := NewConnectionService(credentialRepo, balanceRepo, nil, nil, nil,
		&config.SyncConfig{}, NewSyncLogger(discardLogger()), nil, discardLogger())

	ctx := context.Background()
	userID := uuid.New()
	require.NoError(t, balanceRepo.UpsertBatch(ctx, []*models.Balance{
		{UserID: userID, Provider: models.ProviderGemini, Currency: "BTC", Amount: decimal.RequireFromString("1")},
	}))

	err = service.Unlink(ctx, userID, models.ProviderGemini)
	assert.ErrorIs(t, err, models.ErrNotFound)

	rows, err := balanceRepo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
