package action

// Resolved is what a Call resolves to:
// the names of its action and controller and the route values to link with.
type Resolved struct {
	Action      string
	Controller  string
	RouteValues Values
}

// Resolve resolves c into the action and controller it references
// and the route values its params declare,
// overlaid with routeValues as normalized by [NewValues].
// Where both name the same route value, routeValues wins.
//
// With addControllerAndAction, the controller and action names are also set
// as the route values [ControllerKey] and [ActionKey],
// which routes matched by name rather than by action require.
//
// Resolve returns an error wrapping signpost.ErrNotValid when c does not reference
// a method of its controller or when its params or routeValues cannot be normalized.
func Resolve(c Call, routeValues any, addControllerAndAction bool) (Resolved, error) {
	controller, action, err := c.Names()
	if err != nil {
		return Resolved{}, err
	}

	vals, err := c.Params()
	if err != nil {
		return Resolved{}, err
	}

	extra, err := NewValues(routeValues)
	if err != nil {
		return Resolved{}, err
	}

	for k, v := range extra {
		vals[k] = v
	}

	if addControllerAndAction {
		vals[ControllerKey] = controller
		vals[ActionKey] = action
	}

	return Resolved{Action: action, Controller: controller, RouteValues: vals}, nil
}
