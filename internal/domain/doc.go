// Package domain contains the core business entities of the academy: users
// and their roles, class listings with seat counts and review status, cart
// items (selected classes) and payment records. It also defines the domain
// errors shared by the store, service and API layers.
package domain
