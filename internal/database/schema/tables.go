// Package schema defines the database schema for development.
//
// DEVELOPMENT USE ONLY
// This file contains the current database schema and is used for development and testing.
// Before deploying to production, these table definitions should be converted to proper migrations.
package schema

// TableDefinitions contains all the SQL statements to create the database tables
// Don't put REFERENCES and don't put CHECK constraints in the CREATE TABLE statements
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		external_auth_id VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255),
		role VARCHAR(20) NOT NULL DEFAULT 'client',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS onboarding_progress (
		user_id UUID NOT NULL,
		step_id VARCHAR(50) NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		completed_at TIMESTAMP,
		metadata JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, step_id)
	)`,
	`CREATE TABLE IF NOT EXISTS guide_configs (
		guide_type VARCHAR(20) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		embed_url TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_activities (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		activity_type VARCHAR(50) NOT NULL,
		page VARCHAR(255),
		metadata JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_activities_user_id ON user_activities (user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS user_sessions (
		session_id VARCHAR(100) PRIMARY KEY,
		user_id UUID NOT NULL,
		login_time TIMESTAMP NOT NULL,
		last_activity TIMESTAMP NOT NULL,
		logout_time TIMESTAMP,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS venues (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		address TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		id UUID PRIMARY KEY,
		venue_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		job_role VARCHAR(100),
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS onboarding_tasks (
		id UUID PRIMARY KEY,
		venue_id UUID NOT NULL,
		team_member_id UUID,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'not_started',
		due_date TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cms_admins (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255),
		role VARCHAR(20) NOT NULL DEFAULT 'editor',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		last_login TIMESTAMP,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS content_types (
		id UUID PRIMARY KEY,
		name VARCHAR(100) UNIQUE NOT NULL,
		description TEXT,
		schema JSONB NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS content_items (
		id UUID PRIMARY KEY,
		content_type_id UUID NOT NULL,
		item_key VARCHAR(100) UNIQUE NOT NULL,
		content JSONB NOT NULL,
		is_published BOOLEAN NOT NULL DEFAULT FALSE,
		published_at TIMESTAMP,
		created_by UUID NOT NULL,
		updated_by UUID NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS content_versions (
		id UUID PRIMARY KEY,
		content_item_id UUID NOT NULL,
		version_number INTEGER NOT NULL,
		content JSONB NOT NULL,
		created_by UUID NOT NULL,
		created_at TIMESTAMP NOT NULL,
		UNIQUE (content_item_id, version_number)
	)`,
	`CREATE TABLE IF NOT EXISTS content_locks (
		id UUID PRIMARY KEY,
		content_item_id UUID UNIQUE NOT NULL,
		admin_id UUID NOT NULL,
		lock_token UUID NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cms_activity_logs (
		id UUID PRIMARY KEY,
		admin_id UUID NOT NULL,
		action VARCHAR(20) NOT NULL,
		resource_type VARCHAR(50) NOT NULL,
		resource_id VARCHAR(100),
		details JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cms_activity_logs_admin_id ON cms_activity_logs (admin_id, created_at)`,
}

// TableNames returns a list of all table names in creation order
var TableNames = []string{
	"users",
	"onboarding_progress",
	"guide_configs",
	"user_activities",
	"user_sessions",
	"venues",
	"team_members",
	"onboarding_tasks",
	"cms_admins",
	"content_types",
	"content_items",
	"content_versions",
	"content_locks",
	"cms_activity_logs",
}
