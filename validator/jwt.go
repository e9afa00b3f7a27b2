package validator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/jwk"
	"github.com/lestrrat-go/jwx/jwt"
	middleware "github.com/oapi-codegen/gin-middleware"
)

type key string

const accessInfo key = "access_info"

// Access is the verified identity of the caller.
type Access struct {
	UserID      string
	AccessToken string
}

func FromContext(ctx context.Context) (*Access, bool) {
	t, ok := ctx.Value(string(accessInfo)).(*Access)
	return t, ok
}

// SetAccess stores the caller identity on the gin context.
func SetAccess(c *gin.Context, access *Access) {
	c.Set(string(accessInfo), access)
}

var (
	ErrNoAuthHeader      = errors.New("Authorization header is missing")
	ErrInvalidAuthHeader = errors.New("Authorization header is malformed")
	ErrInvalidToken      = errors.New("ID token is invalid")
)

// GetJWSFromRequest extracts a JWS string from an Authorization: Bearer <jws> header
func GetJWSFromRequest(req *http.Request) (string, error) {
	authHdr := req.Header.Get("Authorization")
	if authHdr == "" {
		return "", ErrNoAuthHeader
	}
	prefix := "Bearer "
	if !strings.HasPrefix(authHdr, prefix) {
		return "", ErrInvalidAuthHeader
	}
	return strings.TrimPrefix(authHdr, prefix), nil
}

// KeySource provides the keys ID tokens are signed with.
type KeySource interface {
	KeySet(ctx context.Context) (jwk.Set, error)
}

const firebaseJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

type remoteKeys struct {
	ar  *jwk.AutoRefresh
	url string
}

// FirebaseKeys fetches Google's securetoken keys and refreshes them in the
// background until ctx is done.
func FirebaseKeys(ctx context.Context) KeySource {
	ar := jwk.NewAutoRefresh(ctx)
	ar.Configure(firebaseJWKSURL, jwk.WithMinRefreshInterval(15*time.Minute))
	return &remoteKeys{ar: ar, url: firebaseJWKSURL}
}

func (r *remoteKeys) KeySet(ctx context.Context) (jwk.Set, error) {
	return r.ar.Fetch(ctx, r.url)
}

type staticKeys struct {
	set jwk.Set
}

func StaticKeys(set jwk.Set) KeySource {
	return staticKeys{set: set}
}

func (s staticKeys) KeySet(context.Context) (jwk.Set, error) {
	return s.set, nil
}

// Verifier checks Firebase ID tokens for one project.
type Verifier struct {
	keys      KeySource
	projectID string
	now       func() time.Time
}

func NewVerifier(keys KeySource, projectID string) *Verifier {
	return &Verifier{
		keys:      keys,
		projectID: projectID,
		now:       time.Now,
	}
}

func (v *Verifier) issuer() string {
	return "https://securetoken.google.com/" + v.projectID
}

// Verify validates the signature, audience, issuer and lifetime of raw and
// returns the caller identity.
func (v *Verifier) Verify(ctx context.Context, raw string) (*Access, error) {
	set, err := v.keys.KeySet(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching keys: %w", err)
	}
	token, err := jwt.Parse([]byte(raw), jwt.WithKeySet(set))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	err = jwt.Validate(token,
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer(v.issuer()),
		jwt.WithClock(jwt.ClockFunc(v.now)),
		jwt.WithAcceptableSkew(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if token.Subject() == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return &Access{UserID: token.Subject(), AccessToken: raw}, nil
}

// Authenticate is the openapi3filter hook for the bearerAuth scheme. The
// verified identity is stored on the gin context for the handlers.
func (v *Verifier) Authenticate(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
	if input.SecuritySchemeName != "bearerAuth" {
		return fmt.Errorf("security scheme %s != 'bearerAuth'", input.SecuritySchemeName)
	}

	jws, err := GetJWSFromRequest(input.RequestValidationInput.Request)
	if err != nil {
		return fmt.Errorf("getting jws: %w", err)
	}

	access, err := v.Verify(ctx, jws)
	if err != nil {
		return err
	}

	gCtx := middleware.GetGinContext(ctx)
	if gCtx == nil {
		return errors.New("missing gin context")
	}
	SetAccess(gCtx, access)
	return nil
}
