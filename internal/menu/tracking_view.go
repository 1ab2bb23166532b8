package menu

import (
	"errors"

	"github.com/dukaforge/gamerental/pkg/types"
)

// viewTrackingInfo prints the tracking record of an order. Customers see
// their own orders only.
func (c *Controller) viewTrackingInfo(sess types.Session) error {
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

	info, err := c.repos.Tracking.ForOrder(order.OrderID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			c.printf("No tracking record for this order.\n")
			return nil
		}
		c.report(err)
		return nil
	}

	c.printTracking(info)
	return nil
}

// printTracking renders one tracking record.
func (c *Controller) printTracking(info types.TrackingInfo) {
	c.printf("Tracking ID:  %s\n", info.TrackingID)
	c.printf("Order:        #%d\n", info.OrderID)
	c.printf("Courier:      %s\n", info.Courier)
	c.printf("Location:     %s\n", info.Location)
	c.printf("Status:       %s\n", info.Status)
	c.printf("Last Update:  %s\n", info.LastUpdate.Format("2006-01-02 15:04"))
	c.printf("Comments:     %s\n", info.Comments)
}

// updateTrackingInfo edits a tracking record through the record editor.
// Restricted to employees and managers; the status field offers only the
// closed enum as a numbered submenu.
func (c *Controller) updateTrackingInfo(sess types.Session) error {
	if !sess.CanManageTracking() {
		c.report(types.ErrNotAuthorized)
		return nil
	}

	orderID, err := c.readPositiveInt("Enter rental order ID: ")
	if err != nil {
		return err
	}

	info, err := c.repos.Tracking.ForOrder(int64(orderID))
	if err != nil {
		c.report(err)
		return nil
	}

	fields := []Field{
		{Label: "Courier", Kind: FieldText},
		{Label: "Location", Kind: FieldText},
		{Label: "Status", Kind: FieldEnum, Options: types.TrackingStatuses()},
		{Label: "Comments", Kind: FieldText},
	}
	current := []string{info.Courier, info.Location, info.Status, info.Comments}

	editor := NewEditor("Update Tracking: "+info.TrackingID, fields, current)
	applied, values, err := editor.Run(c)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	info.Courier = values[0]
	info.Location = values[1]
	info.Comments = values[3]
	if err := info.SetStatus(values[2]); err != nil {
		c.report(err)
		return nil
	}

	if err := c.repos.Tracking.Update(info); err != nil {
		c.report(err)
		return nil
	}
	c.printf("Tracking information updated.\n")
	return nil
}
