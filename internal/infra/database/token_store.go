package database

// TokenKey is the fixed key the bearer token is persisted under, whatever
// the backing store.
const TokenKey = "auth_token"
