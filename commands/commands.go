package commands

type CommandType string

const (
	StartCommand CommandType = "start"
	HelpCommand  CommandType = "help"
)

// Callback action codes. Day and slot picks carry path parameters after the
// prefix: "viewday:monday", "buildslot:monday:2", "editslot:back:monday".
const (
	MenuBackAction  = "menu:back"
	MenuViewAction  = "menu:view"
	MenuBuildAction = "menu:build"
	MenuEditAction  = "menu:edit"

	ViewDayPrefix   = "viewday"
	BuildDayPrefix  = "buildday"
	BuildSlotPrefix = "buildslot"
	EditDayPrefix   = "editday"
	EditSlotPrefix  = "editslot"

	BackToken = "back"
)
