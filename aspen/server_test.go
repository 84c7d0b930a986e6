package aspen

// An in-process double of the Aspen platform, implementing the observable
// auth state machine: credential check, failed-attempt counting, lockout,
// token issuance, the pin lifecycle and the authorized resources. Tests
// drive the real fluent client against it over HTTP.

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/atorresprocessa/go-aspen-client/aspen/api"
	"github.com/atorresprocessa/go-aspen-client/aspen/auth"
	"github.com/atorresprocessa/go-aspen-client/aspen/model"
	"github.com/atorresprocessa/go-aspen-client/aspen/pin"
)

const maxFailedPasswordAttempts = 10

type fakeApp struct {
	secret string
	scope  auth.Scope
}

type fakeUser struct {
	password       string
	hasCredential  bool
	corruptSecret  bool
	failedAttempts int
	locked         bool

	pinSet         bool
	pin            string
	previousPins   []string
	activationCode string
}

type fakeAspen struct {
	apps    map[string]*fakeApp
	users   map[string]*fakeUser
	tokens  map[string]string
	smsDown bool

	server *httptest.Server
}

func newFakeAspen() *fakeAspen {
	f := &fakeAspen{
		apps:   make(map[string]*fakeApp),
		users:  make(map[string]*fakeUser),
		tokens: make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signin/user", f.handleUserSignin)
	mux.HandleFunc("POST /auth/signin/app", f.handleAppSignin)
	mux.HandleFunc("POST /me/pin", f.authorized(f.handleSetPin))
	mux.HandleFunc("POST /me/pin/update", f.authorized(f.handleUpdatePin))
	mux.HandleFunc("POST /me/activationcode", f.authorized(f.handleActivationCode))
	mux.HandleFunc("POST /me/tokens", f.authorized(f.handleOK))
	mux.HandleFunc("GET /financial/accounts", f.authorized(f.handleAccounts))
	mux.HandleFunc("GET /financial/accounts/{id}/balances", f.authorized(f.handleBalances))
	mux.HandleFunc("GET /financial/accounts/{id}/balances/{typeId}/statements", f.authorized(f.handleStatements))
	mux.HandleFunc("POST /financial/tokens", f.authorized(f.handleSingleUseToken))
	mux.HandleFunc("GET /management/transferaccounts", f.authorized(f.handleTransferAccounts))
	mux.HandleFunc("POST /management/transferaccounts", f.authorized(f.handleLinkTransferAccount))
	mux.HandleFunc("DELETE /management/transferaccounts/{alias}", f.authorized(f.handleOK))
	mux.HandleFunc("GET /settings/menu", f.authorized(f.handleMenu))
	mux.HandleFunc("GET /settings/document-types", f.authorized(f.handleDocTypes))
	mux.HandleFunc("GET /settings/telcos", f.authorized(f.handleTelcos))
	mux.HandleFunc("GET /settings/tran-types", f.authorized(f.handleTranTypes))
	mux.HandleFunc("GET /settings/payment-types", f.authorized(f.handlePaymentTypes))
	mux.HandleFunc("GET /settings/topups", f.authorized(f.handleTopUps))
	mux.HandleFunc("GET /settings/miscellaneous", f.authorized(f.handleMiscellaneous))
	mux.HandleFunc("GET /push/messages", f.authorized(f.handlePushMessages))

	f.server = httptest.NewServer(mux)
	return f
}

func (f *fakeAspen) Close() {
	f.server.Close()
}

func (f *fakeAspen) URL() string {
	return f.server.URL
}

func (f *fakeAspen) addApp(key, secret string, scope auth.Scope) {
	f.apps[key] = &fakeApp{secret: secret, scope: scope}
}

func (f *fakeAspen) addUser(docType, docNumber string, user *fakeUser) *fakeUser {
	f.users[userKey(docType, docNumber)] = user
	return user
}

func userKey(docType, docNumber string) string {
	return docType + ":" + docNumber
}

func writeError(w http.ResponseWriter, status int, eventID, message string, extra map[string]any) {
	body := map[string]any{"eventId": eventID, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// payloadClaims verifies the X-PRO-Auth-Payload signature with the secret of
// the app named in X-PRO-Auth-App.
func (f *fakeAspen) payloadClaims(r *http.Request) (*fakeApp, jwt.MapClaims, error) {
	app, ok := f.apps[r.Header.Get(api.HeaderAuthApp)]
	if !ok {
		return nil, nil, fmt.Errorf("unknown api key")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(r.Header.Get(api.HeaderAuthPayload), claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(app.secret), nil
	})
	if err != nil {
		return nil, nil, err
	}
	return app, claims, nil
}

const msgInvalidCredential = "Combinación de usuario y contraseña invalida. Por favor revise los valores ingresados e intente de nuevo"

func (f *fakeAspen) handleUserSignin(w http.ResponseWriter, r *http.Request) {
	app, claims, err := f.payloadClaims(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, api.EvtUnrecognizedIdentity, msgInvalidCredential, nil)
		return
	}

	if app.scope != auth.Delegated {
		writeError(w, http.StatusForbidden, api.EvtInsufficientScope,
			"ApiKey no tiene permisos para realizar la operación. Alcance requerido: 'Delegated'", nil)
		return
	}

	docType, _ := claims["DocType"].(string)
	docNumber, _ := claims["DocNumber"].(string)
	password, _ := claims["Password"].(string)

	user, ok := f.users[userKey(docType, docNumber)]
	if !ok {
		writeError(w, http.StatusUnauthorized, api.EvtUnrecognizedIdentity, msgInvalidCredential, nil)
		return
	}

	if user.locked {
		writeError(w, http.StatusUnauthorized, api.EvtIdentityLockedOut,
			"Usuario está bloqueado por superar el número máximo de intentos de sesión inválidos", nil)
		return
	}

	if user.corruptSecret {
		writeError(w, http.StatusInternalServerError, api.EvtCredentialUnverifiable,
			"No es posible verificar las credenciales del usuario", nil)
		return
	}

	if !user.hasCredential {
		writeError(w, http.StatusUnauthorized, api.EvtMissingCredential, msgInvalidCredential, nil)
		return
	}

	if password != user.password {
		user.failedAttempts++
		if user.failedAttempts >= maxFailedPasswordAttempts {
			user.locked = true
			writeError(w, http.StatusUnauthorized, api.EvtLockoutTransition,
				"Usuario ha sido bloqueado por superar el número máximo de intentos de sesión inválidos", nil)
			return
		}
		writeError(w, http.StatusUnauthorized, api.EvtInvalidCredential, msgInvalidCredential, nil)
		return
	}

	user.failedAttempts = 0
	token := uuid.NewString()
	f.tokens[token] = userKey(docType, docNumber)

	deviceID, _ := claims["DeviceId"].(string)
	writeJSON(w, model.SigninResponse{Token: token, DeviceID: deviceID, Username: docNumber})
}

func (f *fakeAspen) handleAppSignin(w http.ResponseWriter, r *http.Request) {
	app, _, err := f.payloadClaims(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, api.EvtUnrecognizedIdentity, msgInvalidCredential, nil)
		return
	}

	if app.scope != auth.Autonomous {
		writeError(w, http.StatusForbidden, api.EvtInsufficientScope,
			"ApiKey no tiene permisos para realizar la operación. Alcance requerido: 'Autonomous'", nil)
		return
	}

	token := uuid.NewString()
	f.tokens[token] = r.Header.Get(api.HeaderAuthApp)
	writeJSON(w, model.SigninResponse{Token: token})
}

// authorized resolves the bearer into the owning user before running h.
func (f *fakeAspen) authorized(h func(w http.ResponseWriter, r *http.Request, user *fakeUser)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bearer := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		owner, ok := f.tokens[bearer]
		if !ok {
			writeError(w, http.StatusUnauthorized, api.EvtUnrecognizedIdentity, "token invalido", nil)
			return
		}
		h(w, r, f.users[owner])
	}
}

func (f *fakeAspen) handleOK(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (f *fakeAspen) handleSetPin(w http.ResponseWriter, r *http.Request, user *fakeUser) {
	var req model.PinRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	var messages []string
	if strings.TrimSpace(req.PinNumber) == "" {
		messages = append(messages, "'PinNumber' no puede ser nulo ni vacío")
	}
	if strings.TrimSpace(req.ActivationCode) == "" {
		messages = append(messages, "'ActivationCode' no puede ser nulo ni vacío")
	}
	if len(messages) > 0 {
		writeError(w, http.StatusBadRequest, api.EvtValidationFailed, strings.Join(messages, "\n"), nil)
		return
	}

	// the platform enforces the same policies the client checks locally
	if err := pin.Evaluate(req.PinNumber); err != nil {
		re := err.(*api.ResponseError)
		writeError(w, re.StatusCode, re.EventID, re.Message, nil)
		return
	}

	if user.activationCode == "" || req.ActivationCode != user.activationCode {
		reason := "Código de activación o identificador es invalido"
		writeError(w, http.StatusExpectationFailed, api.EvtInvalidActivationCode, reason, map[string]any{
			"remainingTimeLapse": 300,
			"reason":             reason,
		})
		return
	}

	user.activationCode = ""
	user.pinSet = true
	user.pin = req.PinNumber
	writeJSON(w, map[string]string{"status": "ok"})
}

func (f *fakeAspen) handleUpdatePin(w http.ResponseWriter, r *http.Request, user *fakeUser) {
	var req model.PinUpdateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if !user.pinSet || req.CurrentPin != user.pin {
		for _, old := range user.previousPins {
			if req.CurrentPin == old {
				// the slot this credential pointed at no longer exists
				http.Error(w, "Not Found", http.StatusNotFound)
				return
			}
		}
		writeError(w, http.StatusNotAcceptable, api.EvtInvalidPin, "Pin invalido", nil)
		return
	}

	user.previousPins = append(user.previousPins, user.pin)
	user.pin = req.NewPin
	writeJSON(w, map[string]string{"status": "ok"})
}

func (f *fakeAspen) handleActivationCode(w http.ResponseWriter, _ *http.Request, user *fakeUser) {
	if f.smsDown {
		writeError(w, http.StatusServiceUnavailable, api.EvtServiceUnavailable,
			"No fue posible enviar su código de activación", nil)
		return
	}

	user.activationCode = "123456"
	writeJSON(w, map[string]string{"status": "ok"})
}

func (f *fakeAspen) handleAccounts(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, []model.AccountInfo{
		{ID: "203945", SourceAccountID: "80200001", MaskedPan: "****2628", Balance: 125000},
	})
}

func (f *fakeAspen) handleBalances(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, []model.BalanceInfo{
		{TypeID: "80", TypeName: "Monedero General", Amount: 125000, Number: "2628"},
	})
}

func (f *fakeAspen) handleStatements(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, []model.StatementInfo{
		{TranName: "Compra", TranType: "17", Category: "Debit", Amount: 15000, Date: "2019-01-16"},
	})
}

func (f *fakeAspen) handleSingleUseToken(w http.ResponseWriter, r *http.Request, user *fakeUser) {
	var req map[string]string
	_ = json.NewDecoder(r.Body).Decode(&req)
	if !user.pinSet || req["pinNumber"] != user.pin {
		writeError(w, http.StatusNotAcceptable, api.EvtInvalidPin, "Pin invalido", nil)
		return
	}
	writeJSON(w, model.SingleUseTokenInfo{Token: "527276", ExpiresIn: 60})
}

func (f *fakeAspen) handleTransferAccounts(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, []model.TransferAccountInfo{
		{Alias: "Alias 001", CardHolderName: "Atorres", MaskedPan: "****2628"},
	})
}

func (f *fakeAspen) handleLinkTransferAccount(w http.ResponseWriter, r *http.Request, user *fakeUser) {
	var req model.TransferAccountRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if !user.pinSet || req.PinNumber != user.pin {
		writeError(w, http.StatusNotAcceptable, api.EvtInvalidPin, "Pin invalido", nil)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func (f *fakeAspen) handleMenu(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, []model.MenuItemInfo{
		{Title: "Saldos", URL: "/balances", Icon: "wallet"},
		{Title: "Movimientos", URL: "/statements", Icon: "list"},
	})
}

func (f *fakeAspen) handleDocTypes(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, []model.DocTypeInfo{
		{ShortName: "CC", Name: "Cédula de ciudadanía"},
		{ShortName: "PAS", Name: "Pasaporte"},
	})
}

func (f *fakeAspen) handleTelcos(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, []model.TelcoInfo{{Code: "CLARO", Name: "Claro"}, {Code: "TIGO", Name: "Tigo"}})
}

func (f *fakeAspen) handleTranTypes(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, []model.TranTypeInfo{{Code: "17", Name: "Compra"}, {Code: "40", Name: "Retiro"}})
}

func (f *fakeAspen) handlePaymentTypes(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, []model.PaymentTypeInfo{{Code: "01", Name: "Factura"}})
}

func (f *fakeAspen) handleTopUps(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, []model.TopUpInfo{{Value: 5000, Telco: "CLARO"}, {Value: 10000, Telco: "TIGO"}})
}

func (f *fakeAspen) handleMiscellaneous(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, model.MiscellaneousInfo{"currencyCode": "COP", "locale": "es-CO"})
}

func (f *fakeAspen) handlePushMessages(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	writeJSON(w, []model.PushMessageInfo{
		{ID: "1", Title: "Bienvenido", Message: "Su cuenta está activa", Date: "2019-01-16"},
	})
}
