package model

// AccountInfo describes one account owned by the current user.
type AccountInfo struct {
	ID              string  `json:"id"`
	SourceAccountID string  `json:"sourceAccountId"`
	MaskedPan       string  `json:"maskedPan"`
	Balance         float64 `json:"balance"`
	IsLockedOut     bool    `json:"isLockedOut"`
}

// BalanceInfo is one balance bucket inside an account.
type BalanceInfo struct {
	TypeID   string  `json:"typeId"`
	TypeName string  `json:"typeName"`
	Amount   float64 `json:"amount"`
	Number   string  `json:"number"`
}

// StatementInfo is a single account movement.
type StatementInfo struct {
	TranName string  `json:"tranName"`
	TranType string  `json:"tranType"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// SingleUseTokenInfo is a one-time transactional token.
type SingleUseTokenInfo struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// MenuItemInfo is one entry of the application menu.
type MenuItemInfo struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// DocTypeInfo is an identification document type recognized by the platform.
type DocTypeInfo struct {
	ShortName string `json:"shortName"`
	Name      string `json:"name"`
}

// TelcoInfo is a mobile carrier available for top-up operations.
type TelcoInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TranTypeInfo is a transaction type recognized by the platform.
type TranTypeInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PaymentTypeInfo is a payment type recognized by the platform.
type PaymentTypeInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TopUpInfo is an admitted value for mobile top-up processes.
type TopUpInfo struct {
	Value int64  `json:"value"`
	Telco string `json:"telco"`
}

// MiscellaneousInfo carries free-form platform settings.
type MiscellaneousInfo map[string]any

// TransferAccountRequest links an external account to the current user.
type TransferAccountRequest struct {
	DocType    string `json:"cardHolderDocType"`
	DocNumber  string `json:"cardHolderDocNumber"`
	Alias      string `json:"alias"`
	CardNumber string `json:"cardNumber"`
	PinNumber  string `json:"pinNumber,omitempty"`
}

// TransferAccountInfo is one linked transfer account.
type TransferAccountInfo struct {
	Alias          string `json:"alias"`
	CardHolderName string `json:"cardHolderName"`
	MaskedPan      string `json:"maskedPan"`
}

// PushMessageInfo is one message delivered through the push channel.
type PushMessageInfo struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// PinRequest is the payload for setting the transactional pin.
type PinRequest struct {
	PinNumber      string `json:"pinNumber,omitempty"`
	ActivationCode string `json:"activationCode,omitempty"`
}

// PinUpdateRequest is the payload for replacing an already set pin.
type PinUpdateRequest struct {
	CurrentPin string `json:"currentPin"`
	NewPin     string `json:"newPin"`
}
