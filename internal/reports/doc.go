// Package reports holds the admin dashboard and analytics sample data,
// their tab bars, and the badge classification used to color them.
//
// All figures are fixed samples. Tab bars resolve unknown ids to their
// first tab.
package reports
