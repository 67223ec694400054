package cli

import "context"

// Today prints tasks due on the current calendar day.
func (a *App) Today(ctx context.Context) error {
	printTasks(a.session.TodayTasks())
	return nil
}

// Pending prints tasks that are not yet completed.
func (a *App) Pending(ctx context.Context) error {
	printTasks(a.session.PendingTasks())
	return nil
}

// Upcoming prints appointments scheduled after the current instant.
func (a *App) Upcoming(ctx context.Context) error {
	printAppointments(a.session.UpcomingAppointments())
	return nil
}
