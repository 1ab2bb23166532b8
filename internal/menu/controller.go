package menu

import (
	"bufio"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/dukaforge/gamerental/internal/rental"
	"github.com/dukaforge/gamerental/pkg/types"
)

// Controller drives the interactive session: it renders menus, reads
// validated choices, and dispatches into the leaf flows. One controller
// serves exactly one terminal session.
type Controller struct {
	in    *bufio.Scanner
	out   io.Writer
	repos *rental.Repos
	log   *zap.Logger
}

// NewController creates a controller reading prompts from in and writing
// menus to out.
func NewController(in io.Reader, out io.Writer, repos *rental.Repos, log *zap.Logger) *Controller {
	return &Controller{
		in:    newScanner(in),
		out:   out,
		repos: repos,
		log:   log,
	}
}

// Run executes the top-level menu loop until the user chooses exit or
// the input stream ends. Store and validation failures inside flows are
// reported to the terminal and the loop continues; only input-stream
// errors other than EOF are returned.
func (c *Controller) Run() error {
	c.printf("\n*******************************************************\n")
	c.printf("              Game Rental Store\n")
	c.printf("*******************************************************\n\n")

	for {
		c.printf("MAIN MENU\n")
		c.printf("---------\n")
		c.printf("1. Create user\n")
		c.printf("2. Log in\n")
		c.printf("9. < EXIT\n")

		choice, err := c.readChoice()
		if err != nil {
			return c.finish(err)
		}

		switch choice {
		case 1:
			err = c.createUser()
		case 2:
			var sess *types.Session
			sess, err = c.logIn()
			if err == nil && sess != nil {
				err = c.userLoop(*sess)
			}
		case 9:
			c.printf("Bye!\n")
			return nil
		default:
			c.printf("Unrecognized choice!\n")
		}
		if err != nil {
			return c.finish(err)
		}
	}
}

// userLoop is the authenticated menu. The session is passed by value to
// every flow; logout simply returns to the main menu.
func (c *Controller) userLoop(sess types.Session) error {
	for {
		c.printf("\nUSER MENU (%s)\n", sess.Login)
		c.printf("---------\n")
		c.printf("1. View Profile\n")
		c.printf("2. Update Profile\n")
		c.printf("3. View Catalog\n")
		c.printf("4. Place Rental Order\n")
		c.printf("5. View Full Rental Order History\n")
		c.printf("6. View Past 5 Rental Orders\n")
		c.printf("7. View Rental Order Information\n")
		c.printf("8. View Tracking Information\n")
		c.printf("9. Update Tracking Information\n")
		c.printf("10. Update Catalog\n")
		c.printf("11. Update User\n")
		c.printf(".........................\n")
		c.printf("20. Log out\n")

		choice, err := c.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = c.viewProfile(sess)
		case 2:
			err = c.updateProfile(sess)
		case 3:
			err = c.viewCatalog()
		case 4:
			err = c.placeOrder(sess)
		case 5:
			err = c.viewAllOrders(sess)
		case 6:
			err = c.viewRecentOrders(sess)
		case 7:
			err = c.viewOrderInfo(sess)
		case 8:
			err = c.viewTrackingInfo(sess)
		case 9:
			err = c.updateTrackingInfo(sess)
		case 10:
			err = c.updateCatalog(sess)
		case 11:
			err = c.updateUser(sess)
		case 20:
			return nil
		default:
			c.printf("Unrecognized choice!\n")
		}
		if err != nil {
			return err
		}
	}
}

// report prints a one-line diagnostic for a recoverable error and logs
// it. No error is swallowed silently; the flow then returns to its
// enclosing menu.
func (c *Controller) report(err error) {
	c.printf("Error: %v\n", err)
	c.log.Warn("operation failed", zap.Error(err))
}

// finish maps end-of-input to a clean exit.
func (c *Controller) finish(err error) error {
	if errors.Is(err, io.EOF) {
		c.printf("\nBye!\n")
		return nil
	}
	return err
}

// createUser runs the registration flow. A taken login is reported and
// the flow returns to the main menu without writing.
func (c *Controller) createUser() error {
	login, err := c.readString("Enter Username: ")
	if err != nil {
		return err
	}
	password, err := c.readString("Enter Password: ")
	if err != nil {
		return err
	}
	phone, err := c.readOptionalString("Enter Phone Number: ")
	if err != nil {
		return err
	}

	if err := c.repos.Users.Register(login, password, phone); err != nil {
		if errors.Is(err, types.ErrDuplicateLogin) {
			c.printf("Sorry, that username is taken. Please try again.\n")
			return nil
		}
		c.report(err)
		return nil
	}
	c.printf("User %s created. You can now log in.\n", login)
	return nil
}

// logIn runs the authentication flow. Invalid credentials are an
// expected outcome: reported, no session, back to the main menu.
func (c *Controller) logIn() (*types.Session, error) {
	login, err := c.readString("Enter Username: ")
	if err != nil {
		return nil, err
	}
	password, err := c.readString("Enter Password: ")
	if err != nil {
		return nil, err
	}

	sess, err := c.repos.Users.Authenticate(login, password)
	if err != nil {
		c.report(err)
		return nil, nil
	}
	if sess == nil {
		c.printf("Invalid username or password.\n")
		return nil, nil
	}
	c.printf("Welcome, %s!\n", sess.Login)
	return sess, nil
}
