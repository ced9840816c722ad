package domain

const (
	RoleManagerGasEngineering  = "Manager of Gas Engineering"
	RoleDirectorGasEngineering = "Director of Gas Engineering"
	RoleDirectorGasOperations  = "Director of Gas Operations"
	RoleSrVPGasOperations      = "Sr. Vice President of Gas Operations"
)

// InternalRoles lists the configurable approver roles in priority order.
var InternalRoles = []string{
	RoleManagerGasEngineering,
	RoleDirectorGasEngineering,
	RoleDirectorGasOperations,
	RoleSrVPGasOperations,
}

type AppSettings struct {
	ProjectName     string `json:"projectName"`
	ProjectLocation string `json:"projectLocation"`
	ProjectManager  string `json:"projectManager"`

	// ApproverConfig maps an internal role to the configured approver
	// display name. An empty name means the role is not in use.
	ApproverConfig map[string]string `json:"approverConfig"`
}

func DefaultAppSettings() AppSettings {
	config := map[string]string{}
	for _, role := range InternalRoles {
		config[role] = ""
	}
	return AppSettings{ApproverConfig: config}
}

// Copy returns a settings value that shares no map with the receiver.
func (s AppSettings) Copy() AppSettings {
	c := s
	c.ApproverConfig = map[string]string{}
	for role, name := range s.ApproverConfig {
		c.ApproverConfig[role] = name
	}
	return c
}
