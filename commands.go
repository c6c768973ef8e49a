package pymote

import (
	"fmt"
	"strconv"
	"strings"
)

// Typed wrappers for the console command catalog. Each wrapper assembles
// the canonical command string and hands it to Execute; the returned
// CommandResult and error follow the Execute contract.

// ---------- Alerts ----------

// Alert sends an alert message to every connected user.
func (c *Client) Alert(message string) (CommandResult, error) {
	return c.Execute("alert "+message, nil)
}

// AlertUser sends an alert message to one user.
func (c *Client) AlertUser(firstName, lastName, message string) (CommandResult, error) {
	return c.Execute(fmt.Sprintf("alert user %s %s %s", firstName, lastName, message), nil)
}

// ---------- User management ----------

// CreateUser creates a new user account. An empty userID lets the server
// assign one.
func (c *Client) CreateUser(firstName, lastName, password, email, userID string) (CommandResult, error) {
	cmd := fmt.Sprintf("create user %s %s %s %s", firstName, lastName, password, email)
	if userID != "" {
		cmd += " " + userID
	}
	return c.Execute(cmd, nil)
}

// ResetUserPassword resets a user's password.
func (c *Client) ResetUserPassword(firstName, lastName, newPassword string) (CommandResult, error) {
	return c.Execute(fmt.Sprintf("reset user password %s %s %s", firstName, lastName, newPassword), nil)
}

// SetUserLevel sets a user's permission level (0 = normal, 200+ = god,
// 250 = admin).
func (c *Client) SetUserLevel(firstName, lastName string, level int) (CommandResult, error) {
	return c.Execute(fmt.Sprintf("set user level %s %s %d", firstName, lastName, level), nil)
}

// KickUser kicks a user from the simulator. The message may be empty.
//
// The console has grown two dialects of this command; this client speaks
// the plain form without a --force flag.
func (c *Client) KickUser(firstName, lastName, message string) (CommandResult, error) {
	return c.Execute(strings.TrimSpace(fmt.Sprintf("kick user %s %s %s", firstName, lastName, message)), nil)
}

// ShowUsers runs "show users" (or "show users full") and attaches the
// parsed user list to the result.
func (c *Client) ShowUsers(full bool) (CommandResult, error) {
	cmd := "show users"
	if full {
		cmd = "show users full"
	}
	return c.Execute(cmd, nil)
}

// GetUsers returns the currently connected users. Transport failures and
// server-reported failures both surface as errors.
func (c *Client) GetUsers(full bool) ([]User, error) {
	res, err := c.ShowUsers(full)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return res.Users(), nil
}

// ---------- Region management ----------

// CreateRegion creates a new region from a region definition file.
func (c *Client) CreateRegion(regionName, regionFile string) (CommandResult, error) {
	return c.Execute(fmt.Sprintf("create region %s %s", regionName, regionFile), nil)
}

// DeleteRegion deletes a region.
func (c *Client) DeleteRegion(regionName string) (CommandResult, error) {
	return c.Execute("delete-region "+regionName, nil)
}

// ChangeRegion switches the console to a different region.
func (c *Client) ChangeRegion(regionName string) (CommandResult, error) {
	return c.Execute("change region "+regionName, nil)
}

// ShowRegions runs "show regions" and attaches the parsed region list to
// the result.
func (c *Client) ShowRegions() (CommandResult, error) {
	return c.Execute("show regions", nil)
}

// GetRegions returns all regions known to the simulator.
func (c *Client) GetRegions() ([]Region, error) {
	res, err := c.ShowRegions()
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return res.Regions(), nil
}

// RegionRestart restarts the current region.
func (c *Client) RegionRestart() (CommandResult, error) {
	return c.Execute("region restart", nil)
}

// RegionRestartNotice schedules a region restart with countdown notices
// at the given delays (in seconds).
func (c *Client) RegionRestartNotice(message string, delays ...int) (CommandResult, error) {
	tokens := make([]string, 0, len(delays))
	for _, d := range delays {
		tokens = append(tokens, strconv.Itoa(d))
	}
	return c.Execute(fmt.Sprintf("region restart notice %s %s", strings.Join(tokens, " "), message), nil)
}

// ---------- Object management ----------

// DeleteObjectByID deletes one object by UUID.
func (c *Client) DeleteObjectByID(uuid string) (CommandResult, error) {
	return c.Execute("delete object id "+uuid, nil)
}

// DeleteObjectsByName deletes objects by name, optionally treating the
// name as a regular expression.
func (c *Client) DeleteObjectsByName(name string, useRegex bool) (CommandResult, error) {
	cmd := "delete object name " + name
	if useRegex {
		cmd += " regex"
	}
	return c.Execute(cmd, nil)
}

// DeleteObjectsByOwner deletes every object owned by the given user UUID.
func (c *Client) DeleteObjectsByOwner(uuid string) (CommandResult, error) {
	return c.Execute("delete object owner "+uuid, nil)
}

// DeleteObjectsOutside deletes objects that drifted outside the region
// boundaries.
func (c *Client) DeleteObjectsOutside() (CommandResult, error) {
	return c.Execute("delete object outside", nil)
}

// ShowObjectByID shows object details by UUID.
func (c *Client) ShowObjectByID(uuid string) (CommandResult, error) {
	return c.Execute("show object id "+uuid, nil)
}

// ShowObjectsByName shows objects by name.
func (c *Client) ShowObjectsByName(name string) (CommandResult, error) {
	return c.Execute("show object name "+name, nil)
}

// EditScale rescales a prim.
func (c *Client) EditScale(primName string, x, y, z float64) (CommandResult, error) {
	return c.Execute(fmt.Sprintf("edit scale %s %v %v %v", primName, x, y, z), nil)
}

// ---------- Terrain ----------

// TerrainLoad loads terrain from a heightmap file.
func (c *Client) TerrainLoad(filename string) (CommandResult, error) {
	return c.Execute("terrain load "+filename, nil)
}

// TerrainSave saves terrain to a heightmap file.
func (c *Client) TerrainSave(filename string) (CommandResult, error) {
	return c.Execute("terrain save "+filename, nil)
}

// TerrainFill fills the terrain to a uniform height.
func (c *Client) TerrainFill(value float64) (CommandResult, error) {
	return c.Execute(fmt.Sprintf("terrain fill %v", value), nil)
}

// TerrainElevate raises the terrain by the given amount.
func (c *Client) TerrainElevate(amount float64) (CommandResult, error) {
	return c.Execute(fmt.Sprintf("terrain elevate %v", amount), nil)
}

// TerrainLower lowers the terrain by the given amount.
func (c *Client) TerrainLower(amount float64) (CommandResult, error) {
	return c.Execute(fmt.Sprintf("terrain lower %v", amount), nil)
}

// TerrainBake saves the current terrain as the revert baseline.
func (c *Client) TerrainBake() (CommandResult, error) {
	return c.Execute("terrain bake", nil)
}

// TerrainRevert restores the terrain to the baked baseline.
func (c *Client) TerrainRevert() (CommandResult, error) {
	return c.Execute("terrain revert", nil)
}

// TerrainStats runs "terrain stats" and attaches the parsed height
// summary to the result.
func (c *Client) TerrainStats() (CommandResult, error) {
	return c.Execute("terrain stats", nil)
}

// GetTerrainStats returns the terrain height summary.
func (c *Client) GetTerrainStats() (TerrainInfo, error) {
	res, err := c.TerrainStats()
	if err != nil {
		return TerrainInfo{}, err
	}
	if err := res.Err(); err != nil {
		return TerrainInfo{}, err
	}
	info, _ := res.Terrain()
	return info, nil
}

// ---------- Archives ----------

// SaveOAR saves the current region to an OAR archive.
func (c *Client) SaveOAR(filename string, noAssets, publish bool) (CommandResult, error) {
	cmd := "save oar " + filename
	if noAssets {
		cmd += " --noassets"
	}
	if publish {
		cmd += " --publish"
	}
	return c.Execute(cmd, nil)
}

// LoadOAR loads an OAR archive into the current region.
func (c *Client) LoadOAR(filename string, merge, skipAssets bool) (CommandResult, error) {
	cmd := "load oar " + filename
	if merge {
		cmd += " --merge"
	}
	if skipAssets {
		cmd += " --skip-assets"
	}
	return c.Execute(cmd, nil)
}

// SaveIAR saves a user's inventory subtree to an IAR archive.
func (c *Client) SaveIAR(firstName, lastName, inventoryPath, password, filename string, noAssets bool) (CommandResult, error) {
	cmd := fmt.Sprintf("save iar %s %s %s %s %s", firstName, lastName, password, inventoryPath, filename)
	if noAssets {
		cmd += " --noassets"
	}
	return c.Execute(cmd, nil)
}

// LoadIAR loads an IAR archive into a user's inventory.
func (c *Client) LoadIAR(firstName, lastName, inventoryPath, password, filename string) (CommandResult, error) {
	return c.Execute(fmt.Sprintf("load iar %s %s %s %s %s", firstName, lastName, password, inventoryPath, filename), nil)
}

// ---------- Login control ----------

// LoginEnable enables user logins.
func (c *Client) LoginEnable() (CommandResult, error) {
	return c.Execute("login enable", nil)
}

// LoginDisable disables user logins.
func (c *Client) LoginDisable() (CommandResult, error) {
	return c.Execute("login disable", nil)
}

// LoginStatus reports whether logins are enabled.
func (c *Client) LoginStatus() (CommandResult, error) {
	return c.Execute("login status", nil)
}

// LoginLevel sets the minimum user level allowed to log in.
func (c *Client) LoginLevel(level int) (CommandResult, error) {
	return c.Execute(fmt.Sprintf("login level %d", level), nil)
}

// LoginText sets the message shown to users at login.
func (c *Client) LoginText(message string) (CommandResult, error) {
	return c.Execute("login text "+message, nil)
}

// ---------- Statistics and monitoring ----------

// ShowInfo shows general server information.
func (c *Client) ShowInfo() (CommandResult, error) {
	return c.Execute("show info", nil)
}

// ShowVersion shows the simulator version.
func (c *Client) ShowVersion() (CommandResult, error) {
	return c.Execute("show version", nil)
}

// ShowUptime shows how long the server has been running.
func (c *Client) ShowUptime() (CommandResult, error) {
	return c.Execute("show uptime", nil)
}

// ShowStats runs "show stats" (optionally for one category) and attaches
// the parsed Stats record to the result.
func (c *Client) ShowStats(category string) (CommandResult, error) {
	cmd := "show stats"
	if category != "" {
		cmd += " " + category
	}
	return c.Execute(cmd, nil)
}

// GetStats returns the parsed server statistics.
func (c *Client) GetStats(category string) (Stats, error) {
	res, err := c.ShowStats(category)
	if err != nil {
		return Stats{}, err
	}
	if err := res.Err(); err != nil {
		return Stats{}, err
	}
	stats, _ := res.Stats()
	return stats, nil
}

// ShowThreads shows the server thread status.
func (c *Client) ShowThreads() (CommandResult, error) {
	return c.Execute("show threads", nil)
}

// ShowScene shows information about the current scene.
func (c *Client) ShowScene() (CommandResult, error) {
	return c.Execute("show scene", nil)
}

// MonitorReport shows the monitoring report.
func (c *Client) MonitorReport() (CommandResult, error) {
	return c.Execute("monitor report", nil)
}

// ---------- System ----------

// Backup persists the current region immediately.
func (c *Client) Backup() (CommandResult, error) {
	return c.Execute("backup", nil)
}

// Shutdown shuts the simulator down.
func (c *Client) Shutdown() (CommandResult, error) {
	return c.Execute("shutdown", nil)
}

// ForceGC forces a garbage collection pass on the server.
func (c *Client) ForceGC() (CommandResult, error) {
	return c.Execute("force gc", nil)
}

// SetLogLevel sets the server log level (DEBUG, INFO, WARN, ERROR, FATAL).
func (c *Client) SetLogLevel(level string) (CommandResult, error) {
	return c.Execute("set log level "+level, nil)
}

// GetLogLevel reports the current server log level.
func (c *Client) GetLogLevel() (CommandResult, error) {
	return c.Execute("get log level", nil)
}
