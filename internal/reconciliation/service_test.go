package reconciliation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ledgerkit/bankrec/internal/bankaccount"
	"github.com/ledgerkit/bankrec/internal/movement"
	"github.com/ledgerkit/bankrec/internal/reconciliation"
	"github.com/ledgerkit/bankrec/internal/statement"
)

var (
	testAccountID = uuid.MustParse("6fa3a48a-6f6a-4a0f-9a46-0a6c1d1dd001")
	testDate      = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
)

func testAccount() *bankaccount.Account {
	return &bankaccount.Account{ID: testAccountID, BankName: "Banco Teste"}
}

func TestService_Reconcile(t *testing.T) {
	recvID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	payID1 := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	payID2 := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	entryID1 := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	entryID2 := uuid.MustParse("55555555-5555-5555-5555-555555555555")
	holderID := uuid.MustParse("66666666-6666-6666-6666-666666666666")

	type args struct {
		params reconciliation.ReconcileParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx)
		check     func(t *testing.T, got *reconciliation.Reconciliation, err error)
	}

	tests := []testCase{
		{
			name: "ExactMatch",
			args: args{
				params: reconciliation.ReconcileParams{
					AccountID:  testAccountID,
					SystemRefs: []movement.Ref{{Source: movement.SourceReceivable, ID: recvID}},
					EntryIDs:   []uuid.UUID{entryID1},
				},
			},
			setupMock: func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx) {
				accounts.EXPECT().Get(gomock.Any(), testAccountID).Return(testAccount(), nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().
					FetchMovements(gomock.Any(), testAccountID, []movement.Ref{{Source: movement.SourceReceivable, ID: recvID}}).
					Return([]movement.Movement{{
						Source:    movement.SourceReceivable,
						SourceID:  recvID,
						Date:      testDate,
						Amount:    25000,
						Direction: movement.DirectionCredit,
					}}, nil)
				tx.EXPECT().
					FetchEntries(gomock.Any(), testAccountID, []uuid.UUID{entryID1}).
					Return([]*statement.Entry{{
						ID:        entryID1,
						PostedAt:  testDate,
						Amount:    25000,
						Direction: movement.DirectionCredit,
					}}, nil)
				tx.EXPECT().LinkedMovements(gomock.Any(), gomock.Any()).Return(nil, nil)
				tx.EXPECT().LinkedEntries(gomock.Any(), gomock.Any()).Return(nil, nil)
				tx.EXPECT().
					CreateReconciliation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *reconciliation.Reconciliation, system []reconciliation.SystemItem, entries []reconciliation.StatementItem) error {
						rec.ID = uuid.New()
						rec.CreatedAt = time.Now()

						require.Len(t, system, 1)
						assert.Equal(t, movement.SourceReceivable, system[0].Source)
						assert.Equal(t, recvID, system[0].SourceID)
						assert.Equal(t, int64(25000), system[0].Amount)
						assert.Equal(t, movement.DirectionCredit, system[0].Direction)

						require.Len(t, entries, 1)
						assert.Equal(t, entryID1, entries[0].StatementEntryID)
						assert.Equal(t, int64(25000), entries[0].Amount)

						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, int64(25000), got.TotalSystem)
				assert.Equal(t, int64(25000), got.TotalStatement)
				assert.Equal(t, int64(0), got.Difference)
				assert.NotEmpty(t, got.ID)
			},
		},
		{
			name: "ManyToOneDebits",
			args: args{
				params: reconciliation.ReconcileParams{
					AccountID: testAccountID,
					SystemRefs: []movement.Ref{
						{Source: movement.SourcePayable, ID: payID1},
						{Source: movement.SourcePayable, ID: payID2},
					},
					EntryIDs: []uuid.UUID{entryID1},
				},
			},
			setupMock: func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx) {
				accounts.EXPECT().Get(gomock.Any(), testAccountID).Return(testAccount(), nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().
					FetchMovements(gomock.Any(), testAccountID, gomock.Any()).
					Return([]movement.Movement{
						{Source: movement.SourcePayable, SourceID: payID1, Amount: 10000, Direction: movement.DirectionDebit},
						{Source: movement.SourcePayable, SourceID: payID2, Amount: 5000, Direction: movement.DirectionDebit},
					}, nil)
				tx.EXPECT().
					FetchEntries(gomock.Any(), testAccountID, gomock.Any()).
					Return([]*statement.Entry{
						{ID: entryID1, Amount: 15000, Direction: movement.DirectionDebit},
					}, nil)
				tx.EXPECT().LinkedMovements(gomock.Any(), gomock.Any()).Return(nil, nil)
				tx.EXPECT().LinkedEntries(gomock.Any(), gomock.Any()).Return(nil, nil)
				tx.EXPECT().CreateReconciliation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, int64(-15000), got.TotalSystem)
				assert.Equal(t, int64(-15000), got.TotalStatement)
				assert.Equal(t, int64(0), got.Difference)
			},
		},
		{
			name: "SumMismatch",
			args: args{
				params: reconciliation.ReconcileParams{
					AccountID:  testAccountID,
					SystemRefs: []movement.Ref{{Source: movement.SourceReceivable, ID: recvID}},
					EntryIDs:   []uuid.UUID{entryID1},
				},
			},
			setupMock: func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx) {
				accounts.EXPECT().Get(gomock.Any(), testAccountID).Return(testAccount(), nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().
					FetchMovements(gomock.Any(), testAccountID, gomock.Any()).
					Return([]movement.Movement{
						{Source: movement.SourceReceivable, SourceID: recvID, Amount: 25000, Direction: movement.DirectionCredit},
					}, nil)
				tx.EXPECT().
					FetchEntries(gomock.Any(), testAccountID, gomock.Any()).
					Return([]*statement.Entry{
						{ID: entryID1, Amount: 25001, Direction: movement.DirectionCredit},
					}, nil)
				tx.EXPECT().LinkedMovements(gomock.Any(), gomock.Any()).Return(nil, nil)
				tx.EXPECT().LinkedEntries(gomock.Any(), gomock.Any()).Return(nil, nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				assert.Nil(t, got)

				var mismatch *reconciliation.SumMismatchError
				require.ErrorAs(t, err, &mismatch)
				assert.Equal(t, int64(25000), mismatch.TotalSystem)
				assert.Equal(t, int64(25001), mismatch.TotalStatement)
				assert.Contains(t, mismatch.Error(), "250.00")
				assert.Contains(t, mismatch.Error(), "250.01")
			},
		},
		{
			name: "EntryAlreadyReconciled",
			args: args{
				params: reconciliation.ReconcileParams{
					AccountID:  testAccountID,
					SystemRefs: []movement.Ref{{Source: movement.SourceReceivable, ID: recvID}},
					EntryIDs:   []uuid.UUID{entryID1},
				},
			},
			setupMock: func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx) {
				accounts.EXPECT().Get(gomock.Any(), testAccountID).Return(testAccount(), nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().
					FetchMovements(gomock.Any(), testAccountID, gomock.Any()).
					Return([]movement.Movement{
						{Source: movement.SourceReceivable, SourceID: recvID, Amount: 25000, Direction: movement.DirectionCredit},
					}, nil)
				tx.EXPECT().
					FetchEntries(gomock.Any(), testAccountID, gomock.Any()).
					Return([]*statement.Entry{
						{ID: entryID1, Amount: 25000, Direction: movement.DirectionCredit},
					}, nil)
				tx.EXPECT().LinkedMovements(gomock.Any(), gomock.Any()).Return(nil, nil)
				tx.EXPECT().
					LinkedEntries(gomock.Any(), []uuid.UUID{entryID1}).
					Return(map[uuid.UUID]uuid.UUID{entryID1: holderID}, nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				assert.Nil(t, got)

				var conflict *reconciliation.AlreadyReconciledError
				require.ErrorAs(t, err, &conflict)
				require.Len(t, conflict.Entries, 1)
				assert.Equal(t, entryID1, conflict.Entries[0].EntryID)
				assert.Equal(t, holderID, conflict.Entries[0].ReconciliationID)
				assert.Empty(t, conflict.System)
			},
		},
		{
			name: "MovementAlreadyReconciled",
			args: args{
				params: reconciliation.ReconcileParams{
					AccountID:  testAccountID,
					SystemRefs: []movement.Ref{{Source: movement.SourcePayable, ID: payID1}},
					EntryIDs:   []uuid.UUID{entryID1},
				},
			},
			setupMock: func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx) {
				ref := movement.Ref{Source: movement.SourcePayable, ID: payID1}

				accounts.EXPECT().Get(gomock.Any(), testAccountID).Return(testAccount(), nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().
					FetchMovements(gomock.Any(), testAccountID, gomock.Any()).
					Return([]movement.Movement{
						{Source: movement.SourcePayable, SourceID: payID1, Amount: 9900, Direction: movement.DirectionDebit},
					}, nil)
				tx.EXPECT().
					FetchEntries(gomock.Any(), testAccountID, gomock.Any()).
					Return([]*statement.Entry{
						{ID: entryID1, Amount: 9900, Direction: movement.DirectionDebit},
					}, nil)
				tx.EXPECT().
					LinkedMovements(gomock.Any(), []movement.Ref{ref}).
					Return(map[movement.Ref]uuid.UUID{ref: holderID}, nil)
				tx.EXPECT().LinkedEntries(gomock.Any(), gomock.Any()).Return(nil, nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				assert.Nil(t, got)

				var conflict *reconciliation.AlreadyReconciledError
				require.ErrorAs(t, err, &conflict)
				require.Len(t, conflict.System, 1)
				assert.Equal(t, payID1, conflict.System[0].Ref.ID)
				assert.Equal(t, holderID, conflict.System[0].ReconciliationID)
			},
		},
		{
			name: "UnknownEntry",
			args: args{
				params: reconciliation.ReconcileParams{
					AccountID:  testAccountID,
					SystemRefs: []movement.Ref{{Source: movement.SourceReceivable, ID: recvID}},
					EntryIDs:   []uuid.UUID{entryID1, entryID2},
				},
			},
			setupMock: func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx) {
				accounts.EXPECT().Get(gomock.Any(), testAccountID).Return(testAccount(), nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().
					FetchMovements(gomock.Any(), testAccountID, gomock.Any()).
					Return([]movement.Movement{
						{Source: movement.SourceReceivable, SourceID: recvID, Amount: 100, Direction: movement.DirectionCredit},
					}, nil)
				tx.EXPECT().
					FetchEntries(gomock.Any(), testAccountID, gomock.Any()).
					Return([]*statement.Entry{
						{ID: entryID1, Amount: 100, Direction: movement.DirectionCredit},
					}, nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				assert.Nil(t, got)

				var unknown *reconciliation.UnknownItemsError
				require.ErrorAs(t, err, &unknown)
				require.Len(t, unknown.Entries, 1)
				assert.Equal(t, entryID2, unknown.Entries[0])
			},
		},
		{
			name: "DuplicateRefsCollapse",
			args: args{
				params: reconciliation.ReconcileParams{
					AccountID: testAccountID,
					SystemRefs: []movement.Ref{
						{Source: movement.SourceReceivable, ID: recvID},
						{Source: movement.SourceReceivable, ID: recvID},
					},
					EntryIDs: []uuid.UUID{entryID1, entryID1},
				},
			},
			setupMock: func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx) {
				accounts.EXPECT().Get(gomock.Any(), testAccountID).Return(testAccount(), nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().
					FetchMovements(gomock.Any(), testAccountID, []movement.Ref{{Source: movement.SourceReceivable, ID: recvID}}).
					Return([]movement.Movement{
						{Source: movement.SourceReceivable, SourceID: recvID, Amount: 7000, Direction: movement.DirectionCredit},
					}, nil)
				tx.EXPECT().
					FetchEntries(gomock.Any(), testAccountID, []uuid.UUID{entryID1}).
					Return([]*statement.Entry{
						{ID: entryID1, Amount: 7000, Direction: movement.DirectionCredit},
					}, nil)
				tx.EXPECT().LinkedMovements(gomock.Any(), gomock.Any()).Return(nil, nil)
				tx.EXPECT().LinkedEntries(gomock.Any(), gomock.Any()).Return(nil, nil)
				tx.EXPECT().CreateReconciliation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(7000), got.TotalSystem)
			},
		},
		{
			name: "EmptySelection",
			args: args{
				params: reconciliation.ReconcileParams{
					AccountID: testAccountID,
					EntryIDs:  []uuid.UUID{entryID1},
				},
			},
			setupMock: nil,
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, reconciliation.ErrEmptySelection)
			},
		},
		{
			name: "AccountNotFound",
			args: args{
				params: reconciliation.ReconcileParams{
					AccountID:  testAccountID,
					SystemRefs: []movement.Ref{{Source: movement.SourceReceivable, ID: recvID}},
					EntryIDs:   []uuid.UUID{entryID1},
				},
			},
			setupMock: func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx) {
				accounts.EXPECT().Get(gomock.Any(), testAccountID).Return(nil, bankaccount.ErrNotFound)
			},
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, bankaccount.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accounts := reconciliation.NewMockAccountSource(ctrl)
			repo := reconciliation.NewMockRepository(ctrl)
			tx := reconciliation.NewMockTx(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(accounts, repo, tx)
			}

			svc := reconciliation.NewService(accounts, repo)
			got, err := svc.Reconcile(context.Background(), tt.args.params)

			tt.check(t, got, err)
		})
	}
}

func TestService_Generate(t *testing.T) {
	entryCredit := uuid.MustParse("77777777-7777-7777-7777-777777777777")
	entryDebit := uuid.MustParse("88888888-8888-8888-8888-888888888888")
	creditClass := uuid.NullUUID{UUID: uuid.MustParse("99999999-9999-9999-9999-999999999999"), Valid: true}
	debitClass := uuid.NullUUID{UUID: uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"), Valid: true}

	type args struct {
		params reconciliation.GenerateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx)
		check     func(t *testing.T, got *reconciliation.Reconciliation, err error)
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: reconciliation.GenerateParams{
					AccountID:              testAccountID,
					EntryIDs:               []uuid.UUID{entryCredit, entryDebit},
					CreditClassificationID: creditClass,
					DebitClassificationID:  debitClass,
				},
			},
			setupMock: func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx) {
				accounts.EXPECT().Get(gomock.Any(), testAccountID).Return(testAccount(), nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().
					FetchEntries(gomock.Any(), testAccountID, gomock.Any()).
					Return([]*statement.Entry{
						{ID: entryCredit, PostedAt: testDate, Amount: 30000, Direction: movement.DirectionCredit, Memo: "TED RECEBIDA"},
						{ID: entryDebit, PostedAt: testDate, Amount: 12050, Direction: movement.DirectionDebit, Payee: "TARIFA BANC"},
					}, nil)
				tx.EXPECT().LinkedEntries(gomock.Any(), gomock.Any()).Return(nil, nil)
				tx.EXPECT().
					CreateManualMovement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mv *movement.ManualMovement) error {
						mv.ID = uuid.New()

						assert.Equal(t, testAccountID, mv.BankAccountID)
						assert.Equal(t, testDate, mv.Date)
						switch mv.Direction {
						case movement.DirectionCredit:
							assert.Equal(t, int64(30000), mv.Amount)
							assert.Equal(t, "TED RECEBIDA", mv.Description)
							assert.Equal(t, creditClass, mv.AccountPlanItemID)
						case movement.DirectionDebit:
							assert.Equal(t, int64(12050), mv.Amount)
							assert.Equal(t, "TARIFA BANC", mv.Description)
							assert.Equal(t, debitClass, mv.AccountPlanItemID)
						}

						return nil
					}).
					Times(2)
				tx.EXPECT().
					CreateReconciliation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *reconciliation.Reconciliation, system []reconciliation.SystemItem, entries []reconciliation.StatementItem) error {
						rec.ID = uuid.New()

						require.Len(t, system, 2)
						for _, item := range system {
							assert.Equal(t, movement.SourceManual, item.Source)
							assert.NotEmpty(t, item.SourceID)
						}
						require.Len(t, entries, 2)

						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, int64(30000-12050), got.TotalSystem)
				assert.Equal(t, got.TotalSystem, got.TotalStatement)
				assert.Equal(t, int64(0), got.Difference)
			},
		},
		{
			name: "MissingDebitClassification",
			args: args{
				params: reconciliation.GenerateParams{
					AccountID:              testAccountID,
					EntryIDs:               []uuid.UUID{entryDebit},
					CreditClassificationID: creditClass,
				},
			},
			setupMock: func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx) {
				accounts.EXPECT().Get(gomock.Any(), testAccountID).Return(testAccount(), nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().
					FetchEntries(gomock.Any(), testAccountID, gomock.Any()).
					Return([]*statement.Entry{
						{ID: entryDebit, Amount: 12050, Direction: movement.DirectionDebit},
					}, nil)
				tx.EXPECT().LinkedEntries(gomock.Any(), gomock.Any()).Return(nil, nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				assert.Nil(t, got)

				var missing *reconciliation.MissingClassificationError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, movement.DirectionDebit, missing.Direction)
			},
		},
		{
			name: "AlreadyReconciledEntry",
			args: args{
				params: reconciliation.GenerateParams{
					AccountID:              testAccountID,
					EntryIDs:               []uuid.UUID{entryCredit},
					CreditClassificationID: creditClass,
				},
			},
			setupMock: func(accounts *reconciliation.MockAccountSource, repo *reconciliation.MockRepository, tx *reconciliation.MockTx) {
				holder := uuid.New()

				accounts.EXPECT().Get(gomock.Any(), testAccountID).Return(testAccount(), nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().
					FetchEntries(gomock.Any(), testAccountID, gomock.Any()).
					Return([]*statement.Entry{
						{ID: entryCredit, Amount: 30000, Direction: movement.DirectionCredit},
					}, nil)
				tx.EXPECT().
					LinkedEntries(gomock.Any(), []uuid.UUID{entryCredit}).
					Return(map[uuid.UUID]uuid.UUID{entryCredit: holder}, nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				assert.Nil(t, got)

				var conflict *reconciliation.AlreadyReconciledError
				require.ErrorAs(t, err, &conflict)
				require.Len(t, conflict.Entries, 1)
				assert.Equal(t, entryCredit, conflict.Entries[0].EntryID)
			},
		},
		{
			name: "EmptySelection",
			args: args{
				params: reconciliation.GenerateParams{AccountID: testAccountID},
			},
			setupMock: nil,
			check: func(t *testing.T, got *reconciliation.Reconciliation, err error) {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, reconciliation.ErrEmptySelection)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accounts := reconciliation.NewMockAccountSource(ctrl)
			repo := reconciliation.NewMockRepository(ctrl)
			tx := reconciliation.NewMockTx(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(accounts, repo, tx)
			}

			svc := reconciliation.NewService(accounts, repo)
			got, err := svc.Generate(context.Background(), tt.args.params)

			tt.check(t, got, err)
		})
	}
}

func TestService_Undo(t *testing.T) {
	recID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(repo *reconciliation.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(repo *reconciliation.MockRepository) {
				repo.EXPECT().DeleteReconciliation(gomock.Any(), recID).Return(nil)
			},
		},
		{
			name: "NotFound",
			setupMock: func(repo *reconciliation.MockRepository) {
				repo.EXPECT().DeleteReconciliation(gomock.Any(), recID).Return(reconciliation.ErrNotFound)
			},
			wantErr: reconciliation.ErrNotFound,
		},
		{
			name: "RepoError",
			setupMock: func(repo *reconciliation.MockRepository) {
				repo.EXPECT().DeleteReconciliation(gomock.Any(), recID).Return(errors.New("db error"))
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := reconciliation.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := reconciliation.NewService(reconciliation.NewMockAccountSource(ctrl), repo)
			err := svc.Undo(context.Background(), recID)

			if tt.name == "Success" {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
