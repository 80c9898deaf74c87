package handlers

// Callback data values. Day and item selections append ":"-separated
// arguments, e.g. "add_day:Juma" or "remove_item:Juma:2".
const (
	cbToday     = "view_today"
	cbTomorrow  = "view_tomorrow"
	cbWeek      = "view_week"
	cbWeekImage = "view_week_image"
	cbSetTime   = "set_time"

	cbAdminPanel     = "admin_panel"
	cbAdminAdd       = "admin_add"
	cbAdminUpload    = "admin_upload"
	cbAdminRemove    = "admin_remove"
	cbAdminStats     = "admin_stats"
	cbAdminBroadcast = "admin_broadcast"
	cbBackMain       = "back_main"

	cbAddDayPrefix     = "add_day:"
	cbRemoveDayPrefix  = "remove_day:"
	cbRemoveItemPrefix = "remove_item:"
)

// skipField lets the admin leave the optional teacher field empty.
const skipField = "-"
