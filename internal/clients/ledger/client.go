package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"rewards-server/internal/observability"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// DefaultTxTimeout bounds how long a batch transaction may take to be mined.
const DefaultTxTimeout = 2 * time.Minute

const rewardsLedgerABI = `[
  {"type":"function","name":"pushRewards","stateMutability":"nonpayable","outputs":[],"inputs":[
    {"name":"rewards","type":"tuple[]","components":[
      {"name":"wallet","type":"address"},
      {"name":"amount","type":"uint256"},
      {"name":"token","type":"address"},
      {"name":"bank","type":"address"},
      {"name":"attestation","type":"bytes"}]}]},
  {"type":"function","name":"lockRewards","stateMutability":"nonpayable","outputs":[],"inputs":[
    {"name":"rewards","type":"tuple[]","components":[
      {"name":"userId","type":"bytes32"},
      {"name":"amount","type":"uint256"},
      {"name":"token","type":"address"},
      {"name":"bank","type":"address"},
      {"name":"attestation","type":"bytes"}]}]}
]`

var (
	ErrMissingEndpoint     = errors.New("ledger rpc endpoint required")
	ErrInvalidContract     = errors.New("invalid ledger contract address")
	ErrInvalidPrivateKey   = errors.New("invalid ledger private key")
	ErrEmptyBatch          = errors.New("empty reward batch")
	ErrInvalidAttestation  = errors.New("invalid attestation encoding")
	ErrTransactionReverted = errors.New("ledger transaction reverted")
	ErrUnconfirmed         = errors.New("ledger transaction broadcast but not confirmed")
)

// UnconfirmedError reports a transaction that reached the node but whose
// receipt was never observed. The batch may still be mined.
type UnconfirmedError struct {
	TxHash string
	Err    error
}

func (e *UnconfirmedError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrUnconfirmed, e.TxHash, e.Err)
}

func (e *UnconfirmedError) Unwrap() error { return e.Err }

func (e *UnconfirmedError) Is(target error) bool { return target == ErrUnconfirmed }

// UnconfirmedTxHash returns the hash carried by an UnconfirmedError anywhere in err's chain.
func UnconfirmedTxHash(err error) (string, bool) {
	var unconfirmed *UnconfirmedError
	if errors.As(err, &unconfirmed) {
		return unconfirmed.TxHash, true
	}
	return "", false
}

// PushReward transfers tokens directly to a known wallet.
type PushReward struct {
	Wallet      common.Address
	Amount      *big.Int
	Token       common.Address
	Bank        common.Address
	Attestation string
}

// LockReward escrows tokens under an encoded identity until a wallet is linked.
type LockReward struct {
	UserID      common.Hash
	Amount      *big.Int
	Token       common.Address
	Bank        common.Address
	Attestation string
}

// Receipt identifies the mined batch transaction.
type Receipt struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
}

// Config holds the chain connection settings.
type Config struct {
	RPCURL          string
	ContractAddress string
	PrivateKey      string
	TxTimeout       time.Duration
}

type pushTuple struct {
	Wallet      common.Address
	Amount      *big.Int
	Token       common.Address
	Bank        common.Address
	Attestation []byte
}

type lockTuple struct {
	UserId      [32]byte
	Amount      *big.Int
	Token       common.Address
	Bank        common.Address
	Attestation []byte
}

// Client submits reward batches to the rewards ledger contract.
type Client struct {
	eth      *ethclient.Client
	contract *bind.BoundContract
	key      *ecdsa.PrivateKey
	chainID  *big.Int
	timeout  time.Duration
	logger   *observability.Logger
}

// NewClient dials the RPC endpoint and binds the ledger contract.
func NewClient(ctx context.Context, cfg Config, logger *observability.Logger) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.RPCURL)
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidContract, cfg.ContractAddress)
	}
	key, err := gethcrypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(cfg.PrivateKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	parsed, err := abi.JSON(strings.NewReader(rewardsLedgerABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ledger abi: %w", err)
	}

	eth, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ledger rpc: %w", err)
	}
	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to fetch chain id: %w", err)
	}

	timeout := cfg.TxTimeout
	if timeout <= 0 {
		timeout = DefaultTxTimeout
	}

	return &Client{
		eth:      eth,
		contract: bind.NewBoundContract(common.HexToAddress(cfg.ContractAddress), parsed, eth, eth, eth),
		key:      key,
		chainID:  chainID,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// PushRewards sends one pushRewards transaction and waits for it to be mined.
func (c *Client) PushRewards(ctx context.Context, rewards []PushReward) (Receipt, error) {
	if len(rewards) == 0 {
		return Receipt{}, ErrEmptyBatch
	}
	tuples := make([]pushTuple, 0, len(rewards))
	for _, reward := range rewards {
		attestation, err := decodeAttestation(reward.Attestation)
		if err != nil {
			return Receipt{}, err
		}
		tuples = append(tuples, pushTuple{
			Wallet:      reward.Wallet,
			Amount:      reward.Amount,
			Token:       reward.Token,
			Bank:        reward.Bank,
			Attestation: attestation,
		})
	}
	return c.transact(ctx, "pushRewards", tuples)
}

// LockRewards sends one lockRewards transaction and waits for it to be mined.
func (c *Client) LockRewards(ctx context.Context, rewards []LockReward) (Receipt, error) {
	if len(rewards) == 0 {
		return Receipt{}, ErrEmptyBatch
	}
	tuples := make([]lockTuple, 0, len(rewards))
	for _, reward := range rewards {
		attestation, err := decodeAttestation(reward.Attestation)
		if err != nil {
			return Receipt{}, err
		}
		tuples = append(tuples, lockTuple{
			UserId:      reward.UserID,
			Amount:      reward.Amount,
			Token:       reward.Token,
			Bank:        reward.Bank,
			Attestation: attestation,
		})
	}
	return c.transact(ctx, "lockRewards", tuples)
}

// Close releases the RPC connection.
func (c *Client) Close() {
	if c != nil && c.eth != nil {
		c.eth.Close()
	}
}

func (c *Client) transact(ctx context.Context, method string, args ...interface{}) (Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	ctx = observability.WithFields(ctx, observability.Field{Key: "ledger_method", Value: method})

	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to build transactor: %w", err)
	}
	opts.Context = ctx

	tx, err := c.contract.Transact(opts, method, args...)
	if err != nil {
		c.logger.Error(ctx, "failed to submit ledger transaction", err)
		return Receipt{}, fmt.Errorf("failed to submit %s: %w", method, err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "tx_hash", Value: tx.Hash().Hex()})
	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		c.logger.Error(ctx, "failed waiting for ledger transaction", err)
		return Receipt{}, &UnconfirmedError{TxHash: tx.Hash().Hex(), Err: fmt.Errorf("failed waiting for %s: %w", method, err)}
	}
	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return Receipt{}, fmt.Errorf("%w: %s", ErrTransactionReverted, tx.Hash().Hex())
	}

	c.logger.Info(ctx, "ledger transaction mined")
	return Receipt{
		TxHash:      tx.Hash().Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

func decodeAttestation(encoded string) ([]byte, error) {
	if encoded == "" {
		return []byte{}, nil
	}
	raw, err := hexutil.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAttestation, err)
	}
	return raw, nil
}
