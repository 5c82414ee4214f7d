package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"rewards-server/internal/clients/ledger"
	"rewards-server/internal/events"
	"rewards-server/internal/observability"
	"rewards-server/internal/store"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

const (
	DefaultBatchSize     = 50
	DefaultStaleAfter    = 15 * time.Minute
	DefaultTokenDecimals = 18

	ModePush = "push"
	ModeLock = "lock"

	markSettledAttempts = 3
)

var (
	ErrFailedReset         = errors.New("failed to reset stale settlement locks")
	ErrFailedClaim         = errors.New("failed to claim pending asset logs")
	ErrMissingMerchant     = errors.New("asset log has no merchant")
	ErrMissingIdentity     = errors.New("asset log has no identity group")
	ErrMissingTokenAddress = errors.New("asset log has no valid token address")
	ErrInvalidAmount       = errors.New("asset amount is not a positive token amount")
	ErrMissingBankAddress  = errors.New("merchant has no valid bank address configured")
	ErrMerchantLookup      = errors.New("failed to look up merchant")
	ErrInvalidWallet       = errors.New("recipient wallet is not a valid address")
	ErrWalletLookup        = errors.New("failed to resolve recipient wallet")
	ErrNotRecorded         = errors.New("settled on-chain but not recorded")
)

// Config bounds one settlement run.
type Config struct {
	BatchSize     int
	StaleAfter    time.Duration
	TokenDecimals int32
}

// ItemError records why one asset log was left pending.
type ItemError struct {
	AssetLogID uuid.UUID `json:"asset_log_id"`
	Mode       string    `json:"mode,omitempty"`
	Error      string    `json:"error"`
}

// BatchReport describes one ledger submission.
type BatchReport struct {
	Mode        string      `json:"mode"`
	AssetLogIDs []uuid.UUID `json:"asset_log_ids"`
	TxHash      string      `json:"tx_hash,omitempty"`
	BlockNumber uint64      `json:"block_number,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// RunResult summarizes one settlement run.
type RunResult struct {
	Reset   int64         `json:"reset"`
	Claimed int           `json:"claimed"`
	Settled int           `json:"settled"`
	Batches []BatchReport `json:"batches,omitempty"`
	Errors  []ItemError   `json:"errors,omitempty"`
}

// SettlementProcessor moves pending token rewards onto the rewards ledger contract.
type SettlementProcessor struct {
	store     SettlementStore
	merchants MerchantDirectory
	wallets   WalletResolver
	ledger    RewardsLedger
	events    EventPublisher
	config    Config
	logger    *observability.Logger
	metrics   *observability.RewardsMetrics
	now       func() time.Time
}

// New builds a SettlementProcessor. Non-positive batch size and stale window fall back to defaults.
func New(
	store SettlementStore,
	merchants MerchantDirectory,
	wallets WalletResolver,
	ledger RewardsLedger,
	events EventPublisher,
	config Config,
	logger *observability.Logger,
	metrics *observability.RewardsMetrics,
) *SettlementProcessor {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	if config.StaleAfter <= 0 {
		config.StaleAfter = DefaultStaleAfter
	}
	if config.TokenDecimals < 0 {
		config.TokenDecimals = DefaultTokenDecimals
	}
	return &SettlementProcessor{
		store:     store,
		merchants: merchants,
		wallets:   wallets,
		ledger:    ledger,
		events:    events,
		config:    config,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// settlementItem is a validated asset log ready for the ledger.
type settlementItem struct {
	assetLogID  uuid.UUID
	merchantID  uuid.UUID
	groupID     uuid.UUID
	wallet      *common.Address
	token       common.Address
	bank        common.Address
	amount      *big.Int
	attestation string
}

type merchantBank struct {
	bank common.Address
	err  error
}

// Run settles one batch of pending token rewards. Only failures to reset or claim abort the
// run; item and partition failures are reported in the result and leave rows pending.
func (p *SettlementProcessor) Run(ctx context.Context) (RunResult, error) {
	var result RunResult
	now := p.now()

	// Reclaim rows a crashed run left in settling
	reset, err := p.store.ResetStaleSettlementLocks(ctx, now.Add(-p.config.StaleAfter))
	if err != nil {
		p.logger.Error(ctx, "failed to reset stale settlement locks", err)
		return result, fmt.Errorf("%w: %v", ErrFailedReset, err)
	}
	result.Reset = reset
	if reset > 0 {
		p.logger.Warn(ctx, fmt.Sprintf("released %d asset logs stuck in settlement", reset))
	}

	// Claim a batch; claimed rows are invisible to concurrent runs
	candidates, err := p.store.ClaimPendingTokenAssetLogs(ctx, p.config.BatchSize, now)
	if err != nil {
		p.logger.Error(ctx, "failed to claim pending asset logs", err)
		return result, fmt.Errorf("%w: %v", ErrFailedClaim, err)
	}
	result.Claimed = len(candidates)
	if len(candidates) == 0 {
		return result, nil
	}

	// Known wallets are paid directly, the rest are escrowed under the identity
	push, lock := p.partition(ctx, candidates, &result)
	if len(push) > 0 {
		p.submit(ctx, ModePush, push, &result)
	}
	if len(lock) > 0 {
		p.submit(ctx, ModeLock, lock, &result)
	}

	p.logger.Info(ctx, fmt.Sprintf("settlement run finished: claimed %d, settled %d, errors %d",
		result.Claimed, result.Settled, len(result.Errors)))
	return result, nil
}

// partition validates each candidate and splits the valid ones by whether a wallet is known.
// Invalid candidates are released immediately with their reason.
func (p *SettlementProcessor) partition(ctx context.Context, candidates []store.SettlementCandidate, result *RunResult) (push, lock []settlementItem) {
	banks := make(map[uuid.UUID]merchantBank)
	var reasons []string
	rejected := make(map[string][]uuid.UUID)

	for _, candidate := range candidates {
		itemCtx := observability.WithFields(ctx, observability.Field{Key: "asset_log_id", Value: candidate.ID.String()})

		item, err := p.validate(itemCtx, candidate, banks)
		if err != nil {
			p.logger.Warn(itemCtx, fmt.Sprintf("asset log excluded from settlement: %v", err))
			reason := err.Error()
			if _, seen := rejected[reason]; !seen {
				reasons = append(reasons, reason)
			}
			rejected[reason] = append(rejected[reason], candidate.ID)
			result.Errors = append(result.Errors, ItemError{AssetLogID: candidate.ID, Error: reason})
			continue
		}

		if item.wallet != nil {
			push = append(push, item)
		} else {
			lock = append(lock, item)
		}
	}

	// One release per distinct reason keeps the error text on every row
	for _, reason := range reasons {
		ids := rejected[reason]
		if err := p.store.ReleaseAssetLogs(ctx, ids, reason); err != nil {
			p.logger.Error(ctx, "failed to release invalid asset logs", err)
		}
		p.metrics.RecordSettlementItems("validation", "invalid", len(ids))
	}
	return push, lock
}

func (p *SettlementProcessor) validate(ctx context.Context, candidate store.SettlementCandidate, banks map[uuid.UUID]merchantBank) (settlementItem, error) {
	if candidate.MerchantID == nil {
		return settlementItem{}, ErrMissingMerchant
	}
	if candidate.IdentityGroupID == nil {
		return settlementItem{}, ErrMissingIdentity
	}
	if candidate.TokenAddress == nil || !common.IsHexAddress(*candidate.TokenAddress) {
		return settlementItem{}, ErrMissingTokenAddress
	}

	// Convert to base units; anything below one unit is not payable
	amount := candidate.Amount.Shift(p.config.TokenDecimals).Truncate(0).BigInt()
	if amount.Sign() <= 0 {
		return settlementItem{}, ErrInvalidAmount
	}

	bank, err := p.merchantBank(ctx, *candidate.MerchantID, banks)
	if err != nil {
		return settlementItem{}, err
	}

	wallet, err := p.recipientWallet(ctx, candidate)
	if err != nil {
		return settlementItem{}, err
	}

	attestation, err := encodeAttestation(candidate)
	if err != nil {
		return settlementItem{}, err
	}

	return settlementItem{
		assetLogID:  candidate.ID,
		merchantID:  *candidate.MerchantID,
		groupID:     *candidate.IdentityGroupID,
		wallet:      wallet,
		token:       common.HexToAddress(*candidate.TokenAddress),
		bank:        bank,
		amount:      amount,
		attestation: attestation,
	}, nil
}

// merchantBank resolves a merchant's bank address once per run, caching failures too.
func (p *SettlementProcessor) merchantBank(ctx context.Context, merchantID uuid.UUID, banks map[uuid.UUID]merchantBank) (common.Address, error) {
	if cached, ok := banks[merchantID]; ok {
		return cached.bank, cached.err
	}

	var entry merchantBank
	merchant, err := p.merchants.GetMerchantByID(ctx, merchantID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		entry.err = ErrMissingBankAddress
	case err != nil:
		p.logger.Error(ctx, "failed to look up merchant", err)
		entry.err = fmt.Errorf("%w: %v", ErrMerchantLookup, err)
	case merchant.BankAddress == nil || !common.IsHexAddress(*merchant.BankAddress):
		entry.err = ErrMissingBankAddress
	default:
		entry.bank = common.HexToAddress(*merchant.BankAddress)
	}
	banks[merchantID] = entry
	return entry.bank, entry.err
}

// recipientWallet returns nil without error when the recipient has no wallet yet.
func (p *SettlementProcessor) recipientWallet(ctx context.Context, candidate store.SettlementCandidate) (*common.Address, error) {
	// Wallet captured at reward time wins over the current link
	wallet := candidate.RecipientWallet
	if wallet == nil {
		resolved, err := p.wallets.GetWalletForIdentityGroup(ctx, *candidate.IdentityGroupID)
		if err != nil {
			p.logger.Error(ctx, "failed to resolve recipient wallet", err)
			return nil, fmt.Errorf("%w: %v", ErrWalletLookup, err)
		}
		wallet = resolved
	}
	if wallet == nil || *wallet == "" {
		return nil, nil
	}
	if !common.IsHexAddress(*wallet) {
		return nil, ErrInvalidWallet
	}
	address := common.HexToAddress(*wallet)
	return &address, nil
}

// submit sends one partition as a single ledger transaction. Success settles every item in it,
// failure releases every item with the same error. A broadcast transaction without a receipt
// leaves the items locked with its hash recorded until they are reconciled.
func (p *SettlementProcessor) submit(ctx context.Context, mode string, items []settlementItem, result *RunResult) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "settlement_mode", Value: mode})
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.assetLogID)
	}
	report := BatchReport{Mode: mode, AssetLogIDs: ids}

	start := p.now()
	var receipt ledger.Receipt
	var err error
	if mode == ModePush {
		receipt, err = p.ledger.PushRewards(ctx, pushRewards(items))
	} else {
		receipt, err = p.ledger.LockRewards(ctx, lockRewards(items))
	}
	p.metrics.ObserveSettlementBatch(mode, p.now().Sub(start))

	if txHash, ok := ledger.UnconfirmedTxHash(err); ok {
		// The batch may still be mined. Rows keep their lock and the hash, and the stale reset skips them.
		ctx = observability.WithFields(ctx, observability.Field{Key: "tx_hash", Value: txHash})
		p.logger.Error(ctx, "ledger batch broadcast but not confirmed", err)
		reason := fmt.Sprintf("%v: %s", ledger.ErrUnconfirmed, txHash)
		if recordErr := p.store.RecordUnconfirmedSettlement(ctx, ids, txHash, reason); recordErr != nil {
			p.logger.Error(ctx, "failed to record unconfirmed settlement transaction", recordErr)
		}
		for _, id := range ids {
			result.Errors = append(result.Errors, ItemError{AssetLogID: id, Mode: mode, Error: reason})
		}
		report.TxHash = txHash
		report.Error = reason
		result.Batches = append(result.Batches, report)
		p.metrics.RecordSettlementItems(mode, "unconfirmed", len(ids))
		return
	}
	if err != nil {
		p.logger.Error(ctx, "ledger batch failed", err)
		reason := err.Error()
		if releaseErr := p.store.ReleaseAssetLogs(ctx, ids, reason); releaseErr != nil {
			p.logger.Error(ctx, "failed to release asset logs after ledger failure", releaseErr)
		}
		for _, id := range ids {
			result.Errors = append(result.Errors, ItemError{AssetLogID: id, Mode: mode, Error: reason})
		}
		report.Error = reason
		result.Batches = append(result.Batches, report)
		p.metrics.RecordSettlementItems(mode, "failed", len(ids))
		return
	}

	report.TxHash = receipt.TxHash
	report.BlockNumber = receipt.BlockNumber
	result.Batches = append(result.Batches, report)
	ctx = observability.WithFields(ctx, observability.Field{Key: "tx_hash", Value: receipt.TxHash})

	if err := p.markSettled(ctx, ids, receipt); err != nil {
		// Rows stay locked so the next run cannot resubmit them before the stale reset.
		p.logger.Error(ctx, "ledger batch mined but asset logs were not marked settled", err)
		reason := fmt.Sprintf("%v: %s", ErrNotRecorded, receipt.TxHash)
		for _, id := range ids {
			result.Errors = append(result.Errors, ItemError{AssetLogID: id, Mode: mode, Error: reason})
		}
		p.metrics.RecordSettlementItems(mode, "unrecorded", len(ids))
		return
	}

	result.Settled += len(ids)
	p.metrics.RecordSettlementItems(mode, "settled", len(ids))
	p.logger.Info(ctx, fmt.Sprintf("settled %d asset logs", len(ids)))

	// Group settled items per merchant for the outbound event
	merchantAssets := make(map[uuid.UUID][]uuid.UUID)
	for _, item := range items {
		merchantAssets[item.merchantID] = append(merchantAssets[item.merchantID], item.assetLogID)
	}
	batch := events.SettlementBatch{
		Mode:        mode,
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber,
		AssetLogIDs: ids,
	}
	if err := p.events.PublishSettlementCompleted(ctx, batch, merchantAssets); err != nil {
		p.logger.Error(ctx, "failed to publish settlement completed event", err)
	}
}

func (p *SettlementProcessor) markSettled(ctx context.Context, ids []uuid.UUID, receipt ledger.Receipt) error {
	var err error
	for attempt := 0; attempt < markSettledAttempts; attempt++ {
		if err = p.store.MarkAssetLogsSettled(ctx, ids, receipt.TxHash, receipt.BlockNumber); err == nil {
			return nil
		}
		p.logger.Warn(ctx, fmt.Sprintf("mark settled attempt %d failed: %v", attempt+1, err))
	}
	return err
}

func pushRewards(items []settlementItem) []ledger.PushReward {
	rewards := make([]ledger.PushReward, 0, len(items))
	for _, item := range items {
		rewards = append(rewards, ledger.PushReward{
			Wallet:      *item.wallet,
			Amount:      item.amount,
			Token:       item.token,
			Bank:        item.bank,
			Attestation: item.attestation,
		})
	}
	return rewards
}

func lockRewards(items []settlementItem) []ledger.LockReward {
	rewards := make([]ledger.LockReward, 0, len(items))
	for _, item := range items {
		rewards = append(rewards, ledger.LockReward{
			UserID:      EncodeUserID(item.groupID),
			Amount:      item.amount,
			Token:       item.token,
			Bank:        item.bank,
			Attestation: item.attestation,
		})
	}
	return rewards
}

// EncodeUserID is the opaque escrow key for an identity group without a wallet.
func EncodeUserID(identityGroupID uuid.UUID) common.Hash {
	return gethcrypto.Keccak256Hash([]byte(identityGroupID.String()))
}

type attestationRecord struct {
	AssetLogID       string `json:"asset_log_id"`
	InteractionLogID string `json:"interaction_log_id,omitempty"`
	InteractionAt    string `json:"interaction_at,omitempty"`
	RewardCreatedAt  string `json:"reward_created_at"`
}

// encodeAttestation hex-encodes the event history backing a reward.
func encodeAttestation(candidate store.SettlementCandidate) (string, error) {
	record := attestationRecord{
		AssetLogID:      candidate.ID.String(),
		RewardCreatedAt: candidate.CreatedAt.UTC().Format(time.RFC3339),
	}
	if candidate.InteractionLogID != nil {
		record.InteractionLogID = candidate.InteractionLogID.String()
	}
	if candidate.InteractionCreatedAt != nil {
		record.InteractionAt = candidate.InteractionCreatedAt.UTC().Format(time.RFC3339)
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode attestation: %w", err)
	}
	return hexutil.Encode(raw), nil
}
