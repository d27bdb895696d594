package model

// Built-in role names. These ship with a hard-coded default permission
// set used only to pre-populate the role creation form; persisted Role
// records remain the canonical source for authorization data.
const (
	BuiltinRoleAdmin       = "admin"
	BuiltinRoleHeadTeacher = "head-teacher"
	BuiltinRoleTeacher     = "teacher"
	BuiltinRoleAccounts    = "accounts"
	BuiltinRoleStudent     = "student"
)

// BuiltinRoles lists the built-in role names in display order.
var BuiltinRoles = []string{
	BuiltinRoleAdmin,
	BuiltinRoleHeadTeacher,
	BuiltinRoleTeacher,
	BuiltinRoleAccounts,
	BuiltinRoleStudent,
}

// defaultRolePermissions maps each built-in role to the permissions it
// is granted by default. The admin role gets the whole catalog.
var defaultRolePermissions = map[string][]Permission{
	BuiltinRoleAdmin: AllPermissions,
	BuiltinRoleHeadTeacher: {
		PermissionViewDashboard,
		PermissionViewUsers,
		PermissionViewStudents,
		PermissionManageStudents,
		PermissionExportStudents,
		PermissionViewTeachers,
		PermissionManageTeachers,
		PermissionViewClassrooms,
		PermissionManageClassrooms,
		PermissionViewSubjects,
		PermissionManageSubjects,
		PermissionViewTimetable,
		PermissionManageTimetable,
		PermissionViewExams,
		PermissionManageExams,
		PermissionViewResults,
		PermissionManageResults,
		PermissionPublishResults,
		PermissionViewAttendance,
		PermissionRecordAttendance,
		PermissionViewIssues,
		PermissionManageIssues,
		PermissionViewReports,
		PermissionExportReports,
	},
	BuiltinRoleTeacher: {
		PermissionViewDashboard,
		PermissionViewStudents,
		PermissionViewClassrooms,
		PermissionViewSubjects,
		PermissionViewTimetable,
		PermissionViewExams,
		PermissionViewResults,
		PermissionManageResults,
		PermissionViewAttendance,
		PermissionRecordAttendance,
		PermissionViewIssues,
	},
	BuiltinRoleAccounts: {
		PermissionViewDashboard,
		PermissionViewStudents,
		PermissionViewFees,
		PermissionManageFees,
		PermissionViewPayments,
		PermissionRecordPayments,
		PermissionViewExpenses,
		PermissionManageExpenses,
		PermissionViewReports,
		PermissionExportReports,
	},
	BuiltinRoleStudent: {
		PermissionViewDashboard,
		PermissionViewTimetable,
		PermissionViewResults,
		PermissionViewAttendance,
		PermissionViewIssues,
	},
}

// DefaultPermissionsFor returns a copy of the default permission set
// for a built-in role name. Unknown role names yield an empty slice,
// not an error.
func DefaultPermissionsFor(roleName string) []Permission {
	defaults, ok := defaultRolePermissions[roleName]
	if !ok {
		return []Permission{}
	}
	out := make([]Permission, len(defaults))
	copy(out, defaults)
	return out
}
