package authz

// defaultPolicies contains the built-in Cedar authorization policies.
// They check principal.grantedActions, which is filled from the scope mapping,
// so renaming scopes never requires new policies.
const defaultPolicies = `
permit(
  principal,
  action == DataElementHub::Registry::Action::"read",
  resource
) when {
  principal.grantedActions.contains("read")
};

permit(
  principal,
  action == DataElementHub::Registry::Action::"write",
  resource
) when {
  principal.grantedActions.contains("write")
};

permit(
  principal,
  action == DataElementHub::Registry::Action::"admin",
  resource
) when {
  principal.grantedActions.contains("admin")
};
`
