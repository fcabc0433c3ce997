// Package models defines the core domain models for Stockroom.
//
// # Models
//
//   - Item: a stock-keeping unit with a name, unit price, and on-hand quantity
//   - Bill: an immutable record of a sale
//   - BillLineItem: one entry within a Bill
//
// # Design Principles
//
// 1. **Bills are snapshots**: a BillLineItem captures the unit price at the
// moment of billing, so a Bill stays accurate when the referenced Item's
// price changes or the Item is deleted later.
//
// 2. **Exclusive ownership**: line items have no lifecycle of their own; they
// are created and destroyed with their parent Bill.
//
// 3. **Avoid circular references**: line items reference Items by ID string,
// never by pointer.
package models
