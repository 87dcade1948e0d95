package sqlinline

const QCreateDonationsTable = `--sql 3f2c1d84-6a0b-4e52-9c7d-8b1f04a2e6c3
create table if not exists donations (
  id uuid primary key,
  seq bigint generated always as identity,
  donor text not null,
  contact text not null,
  date text not null,
  time text not null,
  items text not null,
  location text not null,
  status text not null default 'pending'
    check (status in ('pending', 'confirmed', 'completed', 'rejected')),
  notes text not null default '',
  created_at timestamptz not null default now(),
  updated_at timestamptz not null default now()
);
`

const QInsertDonation = `--sql b5d9a310-27cf-4f18-8e6a-d42c91b07f5e
insert into donations(id, donor, contact, date, time, items, location, status, notes)
values ($1::uuid, $2::text, $3::text, $4::text, $5::text, $6::text, $7::text, $8::text, $9::text)
returning id, donor, contact, date, time, items, location, status, notes, created_at, updated_at;
`

const QListDonations = `--sql 9e47f6b2-c813-4ba9-a1d5-60fe2a39c884
select id, donor, contact, date, time, items, location, status, notes, created_at, updated_at
from donations
order by created_at desc, seq asc;
`

const QListDonationsByStatus = `--sql 71a3c05e-49d6-4f2b-b8e1-f57d30a8c912
select id, donor, contact, date, time, items, location, status, notes, created_at, updated_at
from donations
where status = any($1::text[])
order by created_at desc, seq asc;
`

const QUpdateDonationStatus = `--sql dc82e971-05b4-4a6f-9d38-12ab76e0f4c5
update donations
set status = $2::text, updated_at = now()
where id = $1::uuid
returning id, donor, contact, date, time, items, location, status, notes, created_at, updated_at;
`
