package api

// Action tags understood by the backend script. The tag is the only routing
// information a request carries.
const (
	ActionLogin                = "login"
	ActionLogout               = "logout"
	ActionCheckSession         = "checkSession"
	ActionGetTodayAttendance   = "getTodayAttendance"
	ActionClockIn              = "clockIn"
	ActionClockOut             = "clockOut"
	ActionRequestEarlyClockIn  = "requestEarlyClockIn"
	ActionRequestOvertime      = "requestOvertime"
	ActionGenerateOTP          = "generateOTP"
	ActionGetInventory         = "getInventory"
	ActionUseInventory         = "useInventory"
	ActionGetPayslip           = "getPayslip"
	ActionGetEmployeePayslip   = "getEmployeePayslip"
	ActionGetEmployeeInventory = "getEmployeeInventory"
	ActionSendMessage          = "sendMessage"
	ActionGetMessages          = "getMessages"
	ActionMarkMessageRead      = "markMessageRead"
	ActionGetAllEmployees      = "getAllEmployees"
	ActionGetPendingApprovals  = "getPendingApprovals"
	ActionProcessApproval      = "processApproval"
	ActionSetEmployeePassword  = "setEmployeePassword"
	ActionGetAdminDashboard    = "getAdminDashboard"
	ActionGetRecentLogs        = "getRecentLogs"
)
