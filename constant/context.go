package constant

type contextKey string

// ClaimsKey holds the authenticated *model.Claims on a request context.
const ClaimsKey contextKey = "claims"
