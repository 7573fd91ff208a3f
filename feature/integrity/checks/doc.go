// Package checks holds the individual install checks run by the integrity feature.
package checks
