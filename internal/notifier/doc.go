// Package notifier publishes standings summaries.
//
// Each team gets one short message with its overall head-to-head record and its
// best matchup. Messages can be printed (dry run) or posted to Twitter.
package notifier
