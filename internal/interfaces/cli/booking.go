package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	appbooking "github.com/tabakhlazeez/hotelctl/internal/application/booking"
)

func (a *App) runCreateBooking(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-booking", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	guestID := fs.Int("guest-id", 0, "Guest ID")
	roomID := fs.Int("room-id", 0, "Room ID")
	checkIn := fs.String("check-in", "", "Check-in date (YYYY-MM-DD)")
	checkOut := fs.String("check-out", "", "Check-out date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	gid, err := parseID(*guestID, "guest-id")
	if err != nil {
		return err
	}
	rid, err := parseID(*roomID, "room-id")
	if err != nil {
		return err
	}

	_, err = a.booking.CreateBooking(ctx, appbooking.CreateBookingRequest{
		GuestID:  gid,
		RoomID:   rid,
		CheckIn:  *checkIn,
		CheckOut: *checkOut,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Booking created successfully.")
	return nil
}

func (a *App) runListBookings(ctx context.Context) error {
	bookings, err := a.booking.ListBookings(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		fmt.Fprintln(a.out, "No bookings available.")
		return nil
	}

	rows := make([][]string, len(bookings))
	for i, b := range bookings {
		rows[i] = []string{
			formatUint(b.ID),
			b.GuestName,
			b.RoomNumber,
			b.CheckIn,
			b.CheckOut,
			b.Status,
			strconv.Itoa(b.Nights),
			money(b.RoomTotal),
		}
	}
	renderTable(a.out, "Bookings",
		[]string{"ID", "Guest", "Room", "Check-in", "Check-out", "Status", "Nights", "Room Total"}, rows)
	return nil
}

func (a *App) runCompleteBooking(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("complete-booking", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	bookingID := fs.Int("booking-id", 0, "Booking ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	bid, err := parseID(*bookingID, "booking-id")
	if err != nil {
		return err
	}

	result, err := a.booking.CompleteBooking(ctx, bid)
	if err != nil {
		return err
	}
	if result.AlreadyCompleted {
		fmt.Fprintln(a.out, "Booking already completed.")
		return nil
	}
	fmt.Fprintln(a.out, "Booking completed and room released.")
	return nil
}

func (a *App) runAddOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order add", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	bookingID := fs.Int("booking-id", 0, "Booking ID")
	serviceID := fs.Int("service-id", 0, "Service ID")
	quantity := fs.Int("quantity", 1, "Quantity")
	notes := fs.String("notes", "", "Special instructions")
	if err := fs.Parse(args); err != nil {
		return err
	}
	bid, err := parseID(*bookingID, "booking-id")
	if err != nil {
		return err
	}
	sid, err := parseID(*serviceID, "service-id")
	if err != nil {
		return err
	}

	_, err = a.booking.AddOrder(ctx, appbooking.CreateOrderRequest{
		BookingID: bid,
		ServiceID: sid,
		Quantity:  *quantity,
		Notes:     *notes,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Order recorded.")
	return nil
}

func (a *App) runListOrders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order list", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	bookingID := fs.Int("booking-id", 0, "Filter by booking")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var filter *uint
	if *bookingID > 0 {
		id := uint(*bookingID)
		filter = &id
	}

	orders, err := a.booking.ListOrders(ctx, filter)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders found.")
		return nil
	}

	rows := make([][]string, len(orders))
	for i, o := range orders {
		rows[i] = []string{
			formatUint(o.ID),
			formatUint(o.BookingID),
			o.ServiceName,
			strconv.Itoa(o.Quantity),
			money(o.TotalPrice),
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	renderTable(a.out, "Orders",
		[]string{"ID", "Booking", "Service", "Qty", "Total", "Created"}, rows)
	return nil
}
