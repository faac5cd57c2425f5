// Package ecode defines the business error codes carried in API error
// bodies and the short messages built around them.
//
// Codes follow the convention:
//   - 0: success
//   - -400 to -499: request and resource errors
//   - -500 and below: server errors
//
// Handlers pair a code with an HTTP status through the resp package:
//
//	resp.Fail(c.Writer, resp.NotFound(ecode.NotExist("Usuario", 7)))
package ecode
