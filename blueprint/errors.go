package blueprint

import "errors"

var (
	// ErrNotPlatform indicates the caller lacks the platform admin role.
	ErrNotPlatform = errors.New("blueprint: caller is not the platform")

	// ErrNotMinter indicates a reserved mint by neither the artist nor the
	// platform minter.
	ErrNotMinter = errors.New("blueprint: user cannot mint presale")

	// ErrTokenAmountNotAllowed indicates a token amount was supplied for a
	// native-currency sale.
	ErrTokenAmountNotAllowed = errors.New("blueprint: cannot specify token amount")

	// ErrNativeAmountNotAllowed indicates native value was attached to a
	// token-currency sale.
	ErrNativeAmountNotAllowed = errors.New("blueprint: cannot specify native amount")

	// ErrWrongPurchaseAmount indicates the attached payment does not equal
	// quantity times unit price exactly.
	ErrWrongPurchaseAmount = errors.New("blueprint: purchase amount must match price")

	// ErrMaxPurchaseExceeded indicates the quantity exceeds the per-transaction cap.
	ErrMaxPurchaseExceeded = errors.New("blueprint: quantity exceeds max purchase amount")

	// ErrPriceOverflow indicates quantity times unit price overflows uint64.
	ErrPriceOverflow = errors.New("blueprint: total price overflows")

	// ErrInsufficientFunds indicates the buyer cannot fund the purchase.
	ErrInsufficientFunds = errors.New("blueprint: insufficient funds")

	// ErrInsufficientAllowance indicates the buyer has not approved enough
	// tokens for a token-currency purchase.
	ErrInsufficientAllowance = errors.New("blueprint: insufficient token allowance")

	// ErrZeroAddress indicates a required address parameter is the zero address.
	ErrZeroAddress = errors.New("blueprint: zero address")

	// ErrTokenExists indicates a mint of an already-issued token id.
	ErrTokenExists = errors.New("blueprint: token already minted")

	// ErrMissingBoundary indicates the engine was built without a required
	// treasury or token minter.
	ErrMissingBoundary = errors.New("blueprint: missing treasury or token minter")
)
