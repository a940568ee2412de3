package database

import (
	"database/sql"
	"fmt"
	"log"
)

// RunMigrations creates the schema if it does not exist.
//
// donations.transaction_id carries a UNIQUE constraint so duplicate webhook
// deliveries cannot record twice even when both pass the pre-insert check.
func RunMigrations(db *sql.DB) error {
	schema := `
	CREATE EXTENSION IF NOT EXISTS pgcrypto;

	CREATE TABLE IF NOT EXISTS admin_users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		first_name VARCHAR(100),
		last_name VARCHAR(100),
		is_admin BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS scholarship_applications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		application_id VARCHAR(40) UNIQUE NOT NULL,
		parent_info JSONB NOT NULL,
		children JSONB NOT NULL DEFAULT '[]',
		documents JSONB NOT NULL DEFAULT '{}',
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		award_info JSONB,
		notes JSONB NOT NULL DEFAULT '[]',
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_by VARCHAR(255)
	);

	CREATE TABLE IF NOT EXISTS waitlist (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		application_id UUID NOT NULL,
		reason VARCHAR(100) NOT NULL DEFAULT 'insufficient_funds',
		priority VARCHAR(20) NOT NULL DEFAULT 'normal',
		notes TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL,
		added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		added_by VARCHAR(255)
	);

	CREATE TABLE IF NOT EXISTS donations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		donor_email VARCHAR(255) NOT NULL,
		donor_name VARCHAR(255) NOT NULL DEFAULT '',
		amount DECIMAL(10,2) NOT NULL,
		transaction_id VARCHAR(255) UNIQUE NOT NULL,
		payment_method VARCHAR(20) NOT NULL,
		recurring BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		receipt_sent BOOLEAN NOT NULL DEFAULT false
	);

	CREATE TABLE IF NOT EXISTS email_templates (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(200) NOT NULL,
		type VARCHAR(50) NOT NULL DEFAULT 'custom',
		subject TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS email_logs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		recipient VARCHAR(500) NOT NULL,
		subject TEXT NOT NULL,
		template_id VARCHAR(64),
		type VARCHAR(50) NOT NULL,
		status VARCHAR(20) NOT NULL,
		error TEXT,
		sent_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		sent_by VARCHAR(255),
		application_id VARCHAR(64),
		details JSONB
	);

	CREATE TABLE IF NOT EXISTS newsletter_subscribers (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		subscribed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		source VARCHAR(50),
		imported_by VARCHAR(255)
	);

	CREATE TABLE IF NOT EXISTS contact_submissions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(200) NOT NULL,
		email VARCHAR(255) NOT NULL,
		subject VARCHAR(500) NOT NULL,
		message TEXT NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS corporate_inquiries (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		company_name VARCHAR(200) NOT NULL,
		contact_name VARCHAR(200) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL DEFAULT '',
		interested_tier VARCHAR(100) NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'new',
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS swim_schools (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(200) NOT NULL,
		contact_person VARCHAR(200) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL DEFAULT '',
		address VARCHAR(300) NOT NULL DEFAULT '',
		city VARCHAR(100) NOT NULL DEFAULT '',
		state_zip VARCHAR(50) NOT NULL DEFAULT '',
		capacity INTEGER NOT NULL DEFAULT 0,
		rate_per_lesson DECIMAL(10,2) NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		accepting_students BOOLEAN NOT NULL DEFAULT true,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_by VARCHAR(255),
		updated_at TIMESTAMPTZ,
		updated_by VARCHAR(255)
	);

	CREATE TABLE IF NOT EXISTS school_payments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		school_id UUID NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		payment_date VARCHAR(20) NOT NULL DEFAULT '',
		application_id VARCHAR(64) NOT NULL DEFAULT '',
		payment_method VARCHAR(50) NOT NULL DEFAULT 'check',
		reference VARCHAR(200) NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_by VARCHAR(255)
	);

	CREATE TABLE IF NOT EXISTS admin_settings (
		id VARCHAR(20) PRIMARY KEY,
		available_funds DECIMAL(12,2) NOT NULL DEFAULT 0,
		low_funds_threshold DECIMAL(12,2) NOT NULL DEFAULT 500,
		progress_reminder_enabled BOOLEAN NOT NULL DEFAULT false,
		progress_reminder_days INTEGER NOT NULL DEFAULT 14,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_by VARCHAR(255)
	);

	CREATE TABLE IF NOT EXISTS scheduled_reminders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		application_id VARCHAR(64) NOT NULL,
		type VARCHAR(50) NOT NULL,
		email VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_applications_status ON scholarship_applications(status);
	CREATE INDEX IF NOT EXISTS idx_applications_submitted ON scholarship_applications(submitted_at);
	CREATE INDEX IF NOT EXISTS idx_waitlist_application ON waitlist(application_id);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_waitlist_position ON waitlist(position);
	CREATE INDEX IF NOT EXISTS idx_donations_transaction ON donations(transaction_id);
	CREATE INDEX IF NOT EXISTS idx_donations_created ON donations(created_at);
	CREATE INDEX IF NOT EXISTS idx_templates_type ON email_templates(type);
	CREATE INDEX IF NOT EXISTS idx_reminders_application ON scheduled_reminders(application_id, type, created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	log.Println("Database tables verified/created successfully")
	return nil
}
