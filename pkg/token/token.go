package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClaimSet atributos verificados del token de identidad: sujeto y grupos.
type ClaimSet struct {
	Subject string
	Groups  []string
}

// HasAnyGroup indica si el claim de grupos intersecta con los grupos dados.
// Claim ausente o intersección vacía -> false.
func (c *ClaimSet) HasAnyGroup(groups ...string) bool {
	for _, g := range groups {
		for _, mine := range c.Groups {
			if g == mine {
				return true
			}
		}
	}
	return false
}

// Verifier verifica un token de identidad y devuelve su claim set.
// Cualquier fallo (expirado, malformado, firma incorrecta) se devuelve como error.
type Verifier interface {
	Verify(tokenString string) (*ClaimSet, error)
}

// claims incluye los claims estándar JWT más el claim de grupos de la aplicación.
type claims struct {
	jwt.RegisteredClaims
	Groups []string `json:"groups"`
}

// HMACVerifier implementación de Verifier sobre HS256 con secreto compartido.
type HMACVerifier struct {
	secret string
	issuer string
}

var _ Verifier = (*HMACVerifier)(nil)

// NewHMACVerifier construye el verificador. El issuer, si no está vacío, se exige en el token.
func NewHMACVerifier(secret, issuer string) *HMACVerifier {
	return &HMACVerifier{secret: secret, issuer: issuer}
}

// Verify valida el token y devuelve el claim set (sujeto y grupos).
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func (v *HMACVerifier) Verify(tokenString string) (*ClaimSet, error) {
	if v.secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	opts := []jwt.ParserOption{}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(v.secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return &ClaimSet{Subject: c.Subject, Groups: c.Groups}, nil
}

// Generate genera un token JWT firmado con sujeto y grupos (útil para dev y tests).
func Generate(secret, subject string, groups []string, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Groups: groups,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}
