package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultTimezone is used for profiles that never set one.
const DefaultTimezone = "UTC"
