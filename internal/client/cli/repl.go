package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

const mainMenu = "\n1 - Sign Up\n2 - Login\n3 - Exit\n"

const orderMenu = "\n1 - Add Order\n2 - Update Quantity\n3 - Remove Order\n4 - Show Orders\n" +
	"5 - Checkout\n6 - Read Logs\n7 - Read Transactions\n8 - Logout\n"

// execIface defines the command surface the menus need to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	AddOrder(ctx context.Context) error
	UpdateOrder(ctx context.Context) error
	RemoveOrder(ctx context.Context) error
	ShowOrders(ctx context.Context) error
	Checkout(ctx context.Context) error
	ReadLogs(ctx context.Context) error
	ReadTransactions(ctx context.Context) error
}

// runMenu drives the anonymous main menu. A successful login hands control
// to runOrderMenu until the user logs out. The loop ends when the user picks
// Exit or input runs out.
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runMenu(ctx context.Context, a execIface, r *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprint(w, mainMenu)
		choice, err := getSimpleText(r, "Choose option: ", w)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			_ = a.SignUp(ctx)
		case "2":
			if err := a.Login(ctx); err != nil {
				continue
			}
			if !runOrderMenu(ctx, a, r, w) {
				return
			}
		case "3":
			fmt.Fprintln(w, "Goodbye!")
			return
		default:
			fmt.Fprintln(w, "Invalid option.")
		}
	}
}

// runOrderMenu drives the logged-in menu. It returns true after Logout and
// false when input ran out.
func runOrderMenu(ctx context.Context, a execIface, r *bufio.Reader, w io.Writer) bool {
	for {
		fmt.Fprint(w, orderMenu)
		choice, err := getSimpleText(r, "Choose option: ", w)
		if err != nil {
			return false
		}

		switch choice {
		case "1":
			_ = a.AddOrder(ctx)
		case "2":
			_ = a.UpdateOrder(ctx)
		case "3":
			_ = a.RemoveOrder(ctx)
		case "4":
			_ = a.ShowOrders(ctx)
		case "5":
			_ = a.Checkout(ctx)
		case "6":
			_ = a.ReadLogs(ctx)
		case "7":
			_ = a.ReadTransactions(ctx)
		case "8":
			_ = a.Logout(ctx)
			return true
		default:
			fmt.Fprintln(w, "Invalid option.")
		}
	}
}
