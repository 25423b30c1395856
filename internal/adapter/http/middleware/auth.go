package middleware

import (
	"log"
	"net/http"
	"strings"

	"carrozzeria/pkg"

	"github.com/gin-gonic/gin"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

const principalKey = "carrozzeria.principal"

// Principal is the caller resolved from the bearer token.
// Admins carry no employee id when they are not shop workers themselves.
type Principal struct {
	EmployeeID string
	Role       Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanActAs reports whether the caller may operate on behalf of employeeID.
func (p Principal) CanActAs(employeeID string) bool {
	if p.IsAdmin() {
		return true
	}
	return p.Role == RoleEmployee && p.EmployeeID != "" && p.EmployeeID == strings.TrimSpace(employeeID)
}

// ParseTokens reads "token=employeeID:role" entries separated by ';'.
// Malformed entries are skipped with a log line.
func ParseTokens(raw string) map[string]Principal {
	out := make(map[string]Principal)
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		token, subject, ok := strings.Cut(entry, "=")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			log.Printf("[auth][middleware] skipping malformed token entry")
			continue
		}
		employeeID, role, _ := strings.Cut(subject, ":")
		p := Principal{EmployeeID: strings.TrimSpace(employeeID), Role: Role(strings.ToLower(strings.TrimSpace(role)))}
		switch p.Role {
		case RoleAdmin:
		case RoleEmployee:
			if p.EmployeeID == "" {
				log.Printf("[auth][middleware] skipping employee token without employee id")
				continue
			}
		default:
			log.Printf("[auth][middleware] skipping token with unknown role=%s", p.Role)
			continue
		}
		out[token] = p
	}
	return out
}

// Auth resolves "Authorization: Bearer <token>" to a Principal.
// With mode "disabled" every request runs as an anonymous admin.
func Auth(mode string, tokens map[string]Principal) gin.HandlerFunc {
	disabled := strings.EqualFold(strings.TrimSpace(mode), "disabled")
	return func(c *gin.Context) {
		if disabled {
			SetPrincipal(c, Principal{Role: RoleAdmin})
			c.Next()
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		p, ok := tokens[token]
		if token == "" || !ok {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid credentials", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		SetPrincipal(c, p)
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers with 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !PrincipalFrom(c).IsAdmin() {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Operation requires the admin role", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the zero Principal when Auth did not run.
func PrincipalFrom(c *gin.Context) Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}
	}
	p, _ := v.(Principal)
	return p
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
