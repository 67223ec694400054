package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/carekeeper/internal/models"
)

func formatAppointment(a models.Appointment) string {
	return fmt.Sprintf("%s  %s  %s (%d min)  %s @ %s  [%s]",
		a.ID, a.Date.Local().Format("2006-01-02 15:04"), a.Title, a.Duration, a.Provider, a.Location, a.Status)
}

func printAppointments(appointments []models.Appointment) {
	if len(appointments) == 0 {
		printlnFn("No appointments")
		return
	}
	for _, ap := range appointments {
		printlnFn(formatAppointment(ap))
	}
}

func (a *App) ListAppointments(ctx context.Context) error {
	printAppointments(a.session.Appointments())
	return nil
}

// AddAppointment interactively collects the fields of a new appointment
// and creates it.
func (a *App) AddAppointment(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Appointment title", os.Stdout)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Date (YYYY-MM-DD HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	when, err := ParseDate(date, time.Local)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}
	durationText, err := getSimpleText(a.reader, "Duration (minutes)", os.Stdout)
	if err != nil {
		return err
	}
	duration, err := strconv.Atoi(durationText)
	if err != nil || duration <= 0 {
		printlnFn("Duration must be a positive number of minutes")
		return nil
	}
	provider, err := GetOptionalText(a.reader, "Provider", os.Stdout)
	if err != nil {
		return err
	}
	location, err := GetOptionalText(a.reader, "Location", os.Stdout)
	if err != nil {
		return err
	}
	apptType, err := GetOptionalText(a.reader, "Type (doctor/therapy/social/other)", os.Stdout)
	if err != nil {
		return err
	}

	appointment, err := a.session.AddAppointment(ctx, models.NewAppointment{
		Title:    title,
		Date:     when,
		Duration: duration,
		Provider: provider,
		Location: location,
		Type:     models.AppointmentType(apptType),
	})
	if err != nil {
		printlnFn("Failed to add appointment:", err.Error())
		return err
	}

	printlnFn("Added appointment", appointment.ID)
	return nil
}

func (a *App) DeleteAppointment(ctx context.Context, id string) error {
	if err := a.session.DeleteAppointment(ctx, id); err != nil {
		printlnFn("Failed to delete appointment:", err.Error())
		return err
	}
	printlnFn("Deleted appointment", id)
	return nil
}
