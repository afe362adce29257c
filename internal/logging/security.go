// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// SecurityLogger writes audit events, the event name follows
// https://cheatsheetseries.owasp.org/cheatsheets/Logging_Vocabulary_Cheat_Sheet.html
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name, level, description string, fields ...zap.Field) {
	fields = append(
		[]zap.Field{
			zap.String("event", name),
			zap.String("level", level),
			zap.String("description", description),
		},
		fields...,
	)

	s.l.Info(description, fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.event("sys_startup", "WARN", fmt.Sprintf("%s is starting", appName))
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("sys_shutdown", "WARN", fmt.Sprintf("%s is shutting down", appName))
}

func (s *SecurityLogger) AuthzSuccess(user, resource string) {
	s.event(
		fmt.Sprintf("authz_success:%s,%s", user, resource),
		"INFO",
		fmt.Sprintf("user %s accessed %s", user, resource),
		zap.String("user", user),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AuthzFailure(user, resource string) {
	s.event(
		fmt.Sprintf("authz_fail:%s,%s", user, resource),
		"CRITICAL",
		fmt.Sprintf("user %s attempted to access %s without entitlement", user, resource),
		zap.String("user", user),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AuthzFailureNotEnoughPermissions(user, resource string) {
	s.event(
		fmt.Sprintf("authz_fail_not_enough_permissions:%s,%s", user, resource),
		"CRITICAL",
		fmt.Sprintf("user %s is missing the superadmin authority required by %s", user, resource),
		zap.String("user", user),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(user, action, resource string) {
	s.event(
		fmt.Sprintf("admin_action:%s,%s,%s", user, action, resource),
		"WARN",
		fmt.Sprintf("user %s performed %s on %s", user, action, resource),
		zap.String("user", user),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) UserMembershipCreated(user, container, role string) {
	s.event(
		fmt.Sprintf("privilege_permissions_changed:%s,%s,%s", user, container, role),
		"WARN",
		fmt.Sprintf("user %s was granted %s on %s", user, role, container),
		zap.String("user", user),
		zap.String("container", container),
		zap.String("role", role),
	)
}

func (s *SecurityLogger) UserInvitationDeleted(user, invitation string) {
	s.event(
		fmt.Sprintf("user_invitation_deleted:%s,%s", user, invitation),
		"WARN",
		fmt.Sprintf("user %s rejected invitation %s", user, invitation),
		zap.String("user", user),
		zap.String("invitation", invitation),
	)
}
