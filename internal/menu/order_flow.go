package menu

import (
	"errors"
	"fmt"

	"github.com/dukaforge/gamerental/pkg/types"
)

// recentOrderCount is how many orders the quick history view shows.
const recentOrderCount = 5

// maxOrderSlots bounds how many distinct games one order may hold. The
// slot count comes straight from the keyboard and sizes an allocation,
// so it must be capped before use.
const maxOrderSlots = 100

// placeOrder runs the order placement flow: bounded slot count, per-slot game ID
// validated against the catalog with re-prompt on a miss, positive unit
// count, then the three-way insert with the total computed from catalog
// prices at placement time. Nothing is written until every slot is
// collected.
func (c *Controller) placeOrder(sess types.Session) error {
	count, err := c.readPositiveInt("How many distinct games do you want to rent? ")
	if err != nil {
		return err
	}
	for count > maxOrderSlots {
		c.printf("At most %d distinct games per order.\n", maxOrderSlots)
		count, err = c.readPositiveInt("How many distinct games do you want to rent? ")
		if err != nil {
			return err
		}
	}

	lines := make([]types.OrderLine, 0, count)
	chosen := make(map[string]bool, count)

	for slot := 1; slot <= count; slot++ {
		var gameID string
		for {
			gameID, err = c.readString(c.sprintSlot(slot, count))
			if err != nil {
				return err
			}
			if chosen[gameID] {
				c.printf("That game is already in this order.\n")
				continue
			}
			if _, err := c.repos.Catalog.Get(gameID); err != nil {
				if errors.Is(err, types.ErrNotFound) {
					c.printf("Could not find game %s.\n", gameID)
					continue
				}
				c.report(err)
				return nil
			}
			break
		}

		units, err := c.readPositiveInt("How many copies? ")
		if err != nil {
			return err
		}

		chosen[gameID] = true
		lines = append(lines, types.OrderLine{GameID: gameID, Units: units})
	}

	order, err := c.repos.Orders.Place(sess.Login, lines)
	if err != nil {
		c.report(err)
		return nil
	}

	c.printf("Order #%d placed. Total price: %.2f. Due back %s.\n",
		order.OrderID, order.TotalPrice, order.DueAt.Format("2006-01-02"))
	return nil
}

// sprintSlot formats the per-slot game ID prompt.
func (c *Controller) sprintSlot(slot, count int) string {
	if count == 1 {
		return "Enter game ID: "
	}
	return fmt.Sprintf("Enter game ID (%d/%d): ", slot, count)
}

// viewAllOrders prints the user's full order history, most recent first.
func (c *Controller) viewAllOrders(sess types.Session) error {
	orders, err := c.repos.Orders.History(sess.Login)
	if err != nil {
		c.report(err)
		return nil
	}
	c.printOrders(orders)
	return nil
}

// viewRecentOrders prints the user's five most recent orders.
func (c *Controller) viewRecentOrders(sess types.Session) error {
	orders, err := c.repos.Orders.Recent(sess.Login, recentOrderCount)
	if err != nil {
		c.report(err)
		return nil
	}
	c.printOrders(orders)
	return nil
}

// printOrders renders an order listing.
func (c *Controller) printOrders(orders []types.RentalOrder) {
	if len(orders) == 0 {
		c.printf("No orders yet.\n")
		return
	}
	for _, o := range orders {
		c.printf("Order #%-6d | %d games | total %8.2f | ordered %s | due %s\n",
			o.OrderID, o.GameCount, o.TotalPrice,
			o.OrderedAt.Format("2006-01-02"), o.DueAt.Format("2006-01-02"))
	}
}

// viewOrderInfo prints one order's header, line items, and tracking
// status. Customers may only inspect their own orders; employees and
// managers may inspect any.
func (c *Controller) viewOrderInfo(sess types.Session) error {
	orderID, err := c.readPositiveInt("Enter rental order ID: ")
	if err != nil {
		return err
	}

	order, err := c.repos.Orders.Get(int64(orderID))
	if err != nil {
		c.report(err)
		return nil
	}
	if order.Login != sess.Login && !sess.CanManageTracking() {
		c.report(types.ErrNotAuthorized)
		return nil
	}

	c.printf("Order #%d by %s\n", order.OrderID, order.Login)
	c.printf("Ordered %s, due %s, total %.2f\n",
		order.OrderedAt.Format("2006-01-02"), order.DueAt.Format("2006-01-02"), order.TotalPrice)

	lines, names, err := c.repos.Orders.Lines(order.OrderID)
	if err != nil {
		c.report(err)
		return nil
	}
	for i, l := range lines {
		c.printf("  %-10s %-40s x%d\n", l.GameID, names[i], l.Units)
	}

	info, err := c.repos.Tracking.ForOrder(order.OrderID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			c.printf("No tracking record for this order.\n")
			return nil
		}
		c.report(err)
		return nil
	}
	c.printf("Tracking %s: %s\n", info.TrackingID, info.Status)
	return nil
}
