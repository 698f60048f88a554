package common

import (
	"fmt"

	"github.com/syssam/solgen/compiler/contract"
)

// SetAccessControl attaches the module implementing access. For roles the
// deployer is granted the admin role.
func SetAccessControl(b *contract.Builder, access Access) {
	switch access {
	case AccessOwnable:
		b.AddParent(Ownable)
	case AccessRoles:
		if b.AddParent(AccessControl) {
			b.AddConstructorCode("_grantRole(DEFAULT_ADMIN_ROLE, msg.sender);")
		}
		b.AddOverride(AccessControl, Functions.Get("supportsInterface"))
	}
}

// RequireAccessControl restricts sig to callers holding role. A contract
// without access control is upgraded to ownable. It returns the access
// style in effect.
func RequireAccessControl(b *contract.Builder, sig contract.Signature, access Access, role string) Access {
	if access == AccessNone || access == "" {
		access = AccessOwnable
	}
	SetAccessControl(b, access)
	switch access {
	case AccessOwnable:
		b.AddModifier("onlyOwner", sig)
	case AccessRoles:
		id := role + "_ROLE"
		if b.AddVariable(fmt.Sprintf("bytes32 public constant %s = keccak256(%q);", id, id)) {
			b.AddConstructorCode(fmt.Sprintf("_grantRole(%s, msg.sender);", id))
		}
		b.AddModifier(fmt.Sprintf("onlyRole(%s)", id), sig)
	}
	return access
}

// AddPausable attaches Pausable, guards fns with whenNotPaused and adds
// restricted pause and unpause functions.
func AddPausable(b *contract.Builder, access Access, fns ...contract.Signature) {
	b.AddParent(Pausable)
	for _, fn := range fns {
		b.AddModifier("whenNotPaused", fn)
	}
	pause, unpause := Functions.Get("pause"), Functions.Get("unpause")
	RequireAccessControl(b, pause, access, "PAUSER")
	b.AddFunctionCode("_pause();", pause)
	RequireAccessControl(b, unpause, access, "PAUSER")
	b.AddFunctionCode("_unpause();", unpause)
}

// SetInfo applies the header metadata.
func SetInfo(b *contract.Builder, info *Info) {
	if info == nil {
		return
	}
	b.SetInfo(info.License, info.SecurityContact)
}
