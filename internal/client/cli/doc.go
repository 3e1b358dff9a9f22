// Package cli provides the interactive ordercli terminal client.
//
// It wires configuration, the account and transaction stores, logging, and a
// two-level numbered menu:
//
//	1 - Sign Up   2 - Login   3 - Exit
//
// After a successful login the order menu takes over until Logout:
//
//	1 - Add Order        2 - Update Quantity   3 - Remove Order
//	4 - Show Orders      5 - Checkout          6 - Read Logs
//	7 - Read Transactions                      8 - Logout
//
// Every operation finishes before the next prompt; failures are reported in
// one line and the menu continues. End of input ends the program.
//
// The menus are started via App.Run(ctx), which blocks until the user exits.
package cli
