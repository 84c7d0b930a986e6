package auth

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/atorresprocessa/go-aspen-client/aspen/api"
)

// RecognizedDocTypes is the set of identification document types the
// platform admits. The concrete set is deployment configuration; these are
// the defaults of the Colombian installation.
var RecognizedDocTypes = []string{"CC", "CE", "TI", "NIT", "PAS"}

// DocNumberPattern bounds the document number to a plain numeric string.
var DocNumberPattern = regexp.MustCompile(`^\d{1,18}$`)

const (
	msgRequired            = "'%s' no puede ser nulo ni vacío"
	msgUnrecognizedDocType = "'%s' no se reconoce como un tipo de identificación"
	msgDocNumberPattern    = "'DocNumber' debe coincidir con el patrón ^\\d{1,18}$"
)

// ValidateUser checks the identity payload before signing and submission.
// Every defect found is aggregated into a single validation error so the
// caller sees all of them at once. A nil return means the payload is
// transmittable.
func ValidateUser(identity *UserIdentity) error {

	var messages []string

	if identity == nil {
		identity = &UserIdentity{}
	}

	if strings.TrimSpace(identity.DeviceID) == "" {
		messages = append(messages, fmt.Sprintf(msgRequired, "DeviceId"))
	}

	switch docType := strings.TrimSpace(identity.DocType); {
	case docType == "":
		messages = append(messages, fmt.Sprintf(msgRequired, "DocType"))
	case !recognizedDocType(docType):
		messages = append(messages, fmt.Sprintf(msgUnrecognizedDocType, identity.DocType))
	}

	switch docNumber := strings.TrimSpace(identity.DocNumber); {
	case docNumber == "":
		messages = append(messages, fmt.Sprintf(msgRequired, "DocNumber"))
	case !DocNumberPattern.MatchString(docNumber):
		messages = append(messages, msgDocNumberPattern)
	}

	if strings.TrimSpace(identity.Password) == "" {
		messages = append(messages, fmt.Sprintf(msgRequired, "Password"))
	}

	if len(messages) == 0 {
		return nil
	}
	return api.NewValidationError(messages...)
}

func recognizedDocType(docType string) bool {
	for _, dt := range RecognizedDocTypes {
		if strings.EqualFold(dt, docType) {
			return true
		}
	}
	return false
}
