// Package environment names the deployment a process runs in (development,
// staging, production) and carries it through context.Context.
//
// Parse normalizes configuration values such as "prod" or "stage";
// WithContext and FromContext attach and read the value; LoggerExtractor
// turns it into an "env" log attribute for the logger package.
package environment
