package repo

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func GetMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2026_07_12_Initial",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`
create table if not exists incoming_money
(
    id             bigserial primary key,
    amount         decimal not null,
    sender         text,
    date_time      text,
    transaction_id text
);

create table if not exists payment_to_code_holder
(
    id             bigserial primary key,
    transaction_id text,
    amount         decimal not null,
    recipient      text,
    recipient_code text,
    date_time      text
);

create table if not exists transfer_to_mobile
(
    id               bigserial primary key,
    amount           decimal not null,
    recipient        text,
    recipient_number text,
    date_time        text,
    fee              decimal
);

create table if not exists bank_deposits
(
    id        bigserial primary key,
    amount    decimal not null,
    date_time text
);

create table if not exists airtime_bill_payments
(
    id             bigserial primary key,
    transaction_id text,
    amount         decimal not null,
    date_time      text,
    fee            decimal
);

create table if not exists cash_power_bill_payments
(
    id             bigserial primary key,
    transaction_id text,
    amount         decimal not null,
    date_time      text,
    fee            decimal
);

create table if not exists third_party_transactions
(
    id             bigserial primary key,
    amount         decimal not null,
    initiated_by   text,
    date_time      text,
    transaction_id text
);

create table if not exists withdrawals_from_agents
(
    id           bigserial primary key,
    user_name    text,
    agent_name   text,
    agent_number text,
    amount       decimal not null,
    date_time    text
);

create table if not exists bank_transfers
(
    id        bigserial primary key,
    amount    decimal not null,
    recipient text,
    date_time text
);

create table if not exists internet_bundle_purchases
(
    id          bigserial primary key,
    amount      decimal not null,
    bundle_size text,
    unit        text,
    date_time   text
);

create table if not exists voice_bundle_purchases
(
    id        bigserial primary key,
    amount    decimal not null,
    minutes   text,
    smses     text,
    date_time text
);

create table if not exists sync_status
(
    transaction_id text primary key,
    source_table   text,
    record_id      bigint,
    synced         boolean default false,
    sync_timestamp timestamp
);
`).Error
			},
		},
		{
			ID: "2026_07_12_TransactionIdIndexes",
			Migrate: func(db *gorm.DB) error {
				// Partial: third-party texts may carry no transaction id at
				// all, and empty values must not collide.
				return db.Exec(`
create unique index if not exists incoming_money_transaction_id_idx
    on incoming_money (transaction_id) where transaction_id <> '';
create unique index if not exists payment_to_code_holder_transaction_id_idx
    on payment_to_code_holder (transaction_id) where transaction_id <> '';
create unique index if not exists airtime_bill_payments_transaction_id_idx
    on airtime_bill_payments (transaction_id) where transaction_id <> '';
create unique index if not exists cash_power_bill_payments_transaction_id_idx
    on cash_power_bill_payments (transaction_id) where transaction_id <> '';
create unique index if not exists third_party_transactions_transaction_id_idx
    on third_party_transactions (transaction_id) where transaction_id <> '';
`).Error
			},
		},
	}
}
