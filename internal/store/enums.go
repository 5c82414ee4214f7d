package store

// Campaign Rule ENUMs
const (
	CampaignRuleStatusDraft    = "draft"
	CampaignRuleStatusActive   = "active"
	CampaignRuleStatusPaused   = "paused"
	CampaignRuleStatusArchived = "archived"
)

// Touchpoint ENUMs
const (
	TouchpointSourceReferralLink = "referral_link"
	TouchpointSourceOrganic      = "organic"
	TouchpointSourcePaidAd       = "paid_ad"
	TouchpointSourceDirect       = "direct"
)

// Interaction Log ENUMs
const (
	InteractionTypeReferralArrival = "referral_arrival"
	InteractionTypePurchase        = "purchase"
	InteractionTypeWalletConnect   = "wallet_connect"
	InteractionTypeIdentityMerge   = "identity_merge"
)

// Asset Log ENUMs
const (
	AssetStatusPending      = "pending"
	AssetStatusReadyToClaim = "ready_to_claim"
	AssetStatusClaimed      = "claimed"
	AssetStatusConsumed     = "consumed"
	AssetStatusCancelled    = "cancelled"
)

const (
	AssetTypeToken    = "token"
	AssetTypeDiscount = "discount"
	AssetTypePoints   = "points"
)

// Identity ENUMs
const (
	IdentifierTypeWallet               = "wallet"
	IdentifierTypeAnonymousFingerprint = "anonymous_fingerprint"
)

const BudgetExceededReason = "budget_exceeded"
