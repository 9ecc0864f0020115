// Package services implements the two flows against the remote password
// service: HashingService (asynchronous, populates the account store) and
// ValidationService (synchronous, answers whether a password matches).
package services
