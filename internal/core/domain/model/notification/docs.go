// Package notification holds the in-app notification record written for order
// lifecycle events. A notification is created once and can only be marked as
// read by one of its recipients.
package notification
