// Package cli implements the interactive brewdesk shell: the screens of the
// onboarding wizard and the authenticated back-office area, navigated
// through the guard-mediated router. Screens never decide admissibility
// themselves; every transition goes through routing.Router.
package cli
