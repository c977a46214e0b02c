/*
Package cliparse handles configuration parsing for the server.

Configuration is read from CLI flags first, then environment variables,
then defaults:

  - Port: -p flag, PORT env, default 8090
  - Timezone: -z flag, TZ_NAME env, default empty (server local time)

The timezone is validated against the IANA database at parse time so a
typo fails at startup rather than silently falling back per request.
*/
package cliparse
