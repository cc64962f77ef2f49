package session

// Authorize reports whether the claims grant the required role. Roles are
// flat string tags compared for equality; no role implies another. Nil
// claims never authorize.
func Authorize(claims *Claims, requiredRole string) bool {
	if claims == nil {
		return false
	}
	return claims.RoleName == requiredRole
}
