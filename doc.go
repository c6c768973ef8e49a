// Package pymote provides a Go client for the OpenSim-Pymote console
// bridge, a TCP service that exposes the OpenSimulator server console to
// remote administration tools.
//
// The bridge speaks a line-delimited JSON protocol. Each request is one
// JSON object followed by a newline, and each request produces exactly one
// response frame:
//
//	Request:  {"Command": "show regions", "Parameters": {}}\n
//	Success:  {"Success": true, "Result": "<console output>"}\n
//	Failure:  {"Success": false, "Error": "<error message>"}\n
//
// # Basic Usage
//
// Create a client and connect to a running bridge:
//
//	client := pymote.NewClient()
//	if err := client.Connect("127.0.0.1", pymote.DefaultPort, 30*time.Second); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Disconnect()
//
//	res, err := client.ShowVersion()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.OK() {
//	    fmt.Println(res.Output())
//	}
//
// Session runs a function against a connected client and guarantees the
// connection is released on every exit path:
//
//	err := pymote.Session("127.0.0.1", pymote.DefaultPort, 30*time.Second,
//	    func(c *pymote.Client) error {
//	        regions, err := c.GetRegions()
//	        if err != nil {
//	            return err
//	        }
//	        for _, r := range regions {
//	            x, y := r.Location()
//	            fmt.Printf("%s at %d,%d\n", r.Name, x, y)
//	        }
//	        return nil
//	    })
//
// # Results and Errors
//
// Execute separates transport failures from server-reported failures.
// Transport problems (not connected, timeout, peer closed the connection)
// and undecodable responses are returned as Go errors: *ConnectionError or
// *CommandError. A server-reported failure ("Success": false) is a normal
// outcome and is carried in the CommandResult value itself; branch on
// res.OK(), or call res.Err() to escalate it into an error:
//
//	res, err := client.KickUser("John", "Doe", "maintenance")
//	if err != nil {
//	    return err // transport or protocol failure
//	}
//	if !res.OK() {
//	    fmt.Println("kick failed:", res.ErrorText()) // e.g. no such user
//	}
//
// # Structured Output
//
// The outputs of "show regions", "show users", "show stats" and
// "terrain stats" are additionally parsed into typed records (Region, User,
// Stats, TerrainInfo) and attached to the result. Parsing is best-effort:
// malformed lines are skipped and a parse that recognizes nothing yields an
// empty payload, never an error. The raw console text is always available
// through Output().
//
// # Command Catalog
//
// The client exposes typed wrappers for the common console commands:
//
//   - Alerts: Alert, AlertUser
//   - Users: CreateUser, ResetUserPassword, SetUserLevel, KickUser, ShowUsers, GetUsers
//   - Regions: CreateRegion, DeleteRegion, ChangeRegion, ShowRegions, GetRegions,
//     RegionRestart, RegionRestartNotice
//   - Objects: DeleteObjectByID, DeleteObjectsByName, DeleteObjectsByOwner,
//     DeleteObjectsOutside, ShowObjectByID, ShowObjectsByName, EditScale
//   - Terrain: TerrainLoad, TerrainSave, TerrainFill, TerrainElevate, TerrainLower,
//     TerrainBake, TerrainRevert, TerrainStats, GetTerrainStats
//   - Archives: SaveOAR, LoadOAR, SaveIAR, LoadIAR
//   - Logins: LoginEnable, LoginDisable, LoginStatus, LoginLevel, LoginText
//   - Monitoring: ShowInfo, ShowVersion, ShowUptime, ShowStats, GetStats,
//     ShowThreads, ShowScene, MonitorReport
//   - System: Backup, Shutdown, ForceGC, SetLogLevel, GetLogLevel
//
// Arbitrary console commands can be sent with Execute.
//
// # Concurrency
//
// The protocol is strictly request/response with one command in flight per
// connection. The client serializes Execute calls internally, so a single
// Client may be shared between goroutines, but commands never overlap on
// the wire. The only cancellation mechanism is the timeout configured at
// Connect time.
package pymote
