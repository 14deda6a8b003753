package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	appregistry "github.com/tabakhlazeez/hotelctl/internal/application/registry"
)

func (a *App) runAddGuest(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-guest", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	name := fs.String("name", "", "Guest full name")
	phone := fs.String("phone", "", "Guest phone number")
	email := fs.String("email", "", "Guest email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	guest, err := a.registry.AddGuest(ctx, appregistry.CreateGuestRequest{
		Name:  *name,
		Phone: *phone,
		Email: *email,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Guest '%s' added successfully.\n", guest.Name)
	return nil
}

func (a *App) runListGuests(ctx context.Context) error {
	guests, err := a.registry.ListGuests(ctx)
	if err != nil {
		return err
	}
	if len(guests) == 0 {
		fmt.Fprintln(a.out, "No guests found.")
		return nil
	}

	rows := make([][]string, len(guests))
	for i, g := range guests {
		rows[i] = []string{
			formatUint(g.ID),
			g.Name,
			orDash(g.Phone),
			orDash(g.Email),
			g.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	renderTable(a.out, "Guests", []string{"ID", "Name", "Phone", "Email", "Created"}, rows)
	return nil
}

func (a *App) runAddRoom(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-room", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	number := fs.String("number", "", "Room identifier")
	roomType := fs.String("type", "", "Room type e.g. deluxe")
	rateValue := fs.String("rate", "", "Nightly rate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rate, err := parseDecimal(*rateValue, "rate")
	if err != nil {
		return err
	}

	room, err := a.registry.AddRoom(ctx, appregistry.CreateRoomRequest{
		RoomNumber: *number,
		RoomType:   *roomType,
		Rate:       rate,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Room %s added.\n", room.RoomNumber)
	return nil
}

func (a *App) runListRooms(ctx context.Context) error {
	rooms, err := a.registry.ListRooms(ctx)
	if err != nil {
		return err
	}
	if len(rooms) == 0 {
		fmt.Fprintln(a.out, "No rooms found.")
		return nil
	}

	rows := make([][]string, len(rooms))
	for i, r := range rooms {
		rows[i] = []string{
			formatUint(r.ID),
			r.RoomNumber,
			r.RoomType,
			money(r.Rate),
			r.Status,
		}
	}
	renderTable(a.out, "Rooms", []string{"ID", "Room", "Type", "Rate", "Status"}, rows)
	return nil
}

func (a *App) runAddService(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("service add", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	name := fs.String("name", "", "Service name")
	priceValue := fs.String("price", "", "Unit price")
	category := fs.String("category", "", "Category e.g. dining")
	if err := fs.Parse(args); err != nil {
		return err
	}
	price, err := parseDecimal(*priceValue, "price")
	if err != nil {
		return err
	}

	svc, err := a.registry.AddService(ctx, appregistry.CreateServiceRequest{
		Name:     *name,
		Price:    price,
		Category: *category,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Service '%s' added.\n", svc.Name)
	return nil
}

func (a *App) runListServices(ctx context.Context) error {
	services, err := a.registry.ListServices(ctx)
	if err != nil {
		return err
	}
	if len(services) == 0 {
		fmt.Fprintln(a.out, "No services defined.")
		return nil
	}

	rows := make([][]string, len(services))
	for i, s := range services {
		rows[i] = []string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.Name,
			money(s.Price),
			orDash(s.Category),
		}
	}
	renderTable(a.out, "Services", []string{"ID", "Name", "Price", "Category"}, rows)
	return nil
}
