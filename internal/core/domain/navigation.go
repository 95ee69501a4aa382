package domain

// ResolveNavigation maps a role to its ordered shell menu. It is pure and
// deterministic; callers receive a fresh slice on every call. Any value
// outside the closed role set (including the zero Role for guests) gets
// the public marketing menu, so an unauthenticated shell always has
// something to render.
//
// Adding a role means extending this switch and Role.Home together.
func ResolveNavigation(role Role) []NavLink {
	switch role {
	case RoleCompany:
		return []NavLink{
			{ID: "home", Label: "Home", TargetPath: "/company/home"},
			{ID: "fleet", Label: "Fleet", TargetPath: "/company/fleet"},
			{ID: "trips", Label: "Trips", TargetPath: "/company/trips"},
			{ID: "feeds", Label: "Feeds", TargetPath: "/company/feeds"},
			{ID: "jobs", Label: "Jobs", TargetPath: "/company/jobs"},
		}
	case RoleBusiness:
		return []NavLink{
			{ID: "home", Label: "Home", TargetPath: "/business/home"},
			{ID: "listings", Label: "Listings", TargetPath: "/business/listings"},
			{ID: "feeds", Label: "Feeds", TargetPath: "/business/feeds"},
			{ID: "jobs", Label: "Jobs", TargetPath: "/business/jobs"},
		}
	case RoleProfessional:
		return []NavLink{
			{ID: "home", Label: "Home", TargetPath: "/professional/home"},
			{ID: "search", Label: "Search", TargetPath: "/professional/search"},
			{ID: "trips", Label: "Trips", TargetPath: "/professional/trips"},
			{ID: "feeds", Label: "Feeds", TargetPath: "/professional/feeds"},
			{ID: "jobs", Label: "Jobs", TargetPath: "/professional/jobs"},
		}
	}
	return []NavLink{
		{ID: "home", Label: "Home", TargetPath: "/"},
		{ID: "about", Label: "About Us", TargetPath: "/about"},
		{ID: "services", Label: "Services", TargetPath: "/services"},
		{ID: "mission-vision", Label: "Mission & Vision", TargetPath: "/mission-vision"},
		{ID: "industries", Label: "Industries", TargetPath: "/industries"},
		{ID: "partners", Label: "Partners", TargetPath: "/partners"},
		{ID: "faq", Label: "FAQ", TargetPath: "/faq"},
		{ID: "contact", Label: "Contact", TargetPath: "/contact"},
	}
}
